package pose

/* CrowdPose keypoints
0: Left Shoulder
1: Right Shoulder
2: Left Elbow
3: Right Elbow
4: Left Wrist
5: Right Wrist
6: Left Hip
7: Right Hip
8: Left Knee
9: Right Knee
10: Left Ankle
11: Right Ankle
12: Head
13: Neck
*/

// Connection is a pair of joint indices to draw a bone between
type Connection struct {
	A int
	B int
}

// Within reports whether both joints of the connection exist in a frame
// holding n keypoints
func (c Connection) Within(n int) bool {
	return c.A >= 0 && c.B >= 0 && c.A < n && c.B < n
}

// crowdPose is the skeleton drawn for every frame, so (13,0) means draw line
// from neck to left shoulder
var crowdPose = [...]Connection{
	// torso
	{13, 0}, {13, 1}, {0, 1},
	// hips
	{0, 6}, {1, 7}, {6, 7},
	// left arm
	{0, 2}, {2, 4},
	// right arm
	{1, 3}, {3, 5},
	// left leg
	{6, 8}, {8, 10},
	// right leg
	{7, 9}, {9, 11},
	// head
	{13, 12},
}

// CrowdPoseConnections returns a copy of the CrowdPose skeleton connection
// table
func CrowdPoseConnections() []Connection {
	conns := make([]Connection, len(crowdPose))
	copy(conns, crowdPose[:])
	return conns
}
