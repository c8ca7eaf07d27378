/*
go-posevideo renders sequences of 2D human pose keypoints, one skeleton per
video frame, into an MP4 video.  Each frame is drawn onto a white canvas with
the joints marked and numbered, the CrowdPose skeleton bones joined and a
timestamp caption in the top left corner.

Drawing and video encoding use OpenCV via GoCV.  The pose, render and encode
subpackages can be used on their own, Convert ties them together as a single
pass batch job.

See the command line tool in the example/skeleton subdirectory.
*/
package posevideo
