package pose

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadError is returned when a keypoint sequence can not be read or does not
// have the expected structure
type LoadError struct {
	Path string
	// Frame is the index of the offending frame entry, or -1 if the error is
	// not specific to one entry
	Frame int
	Err   error
}

func (e *LoadError) Error() string {
	if e.Frame < 0 {
		return fmt.Sprintf("error loading keypoints from %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("error loading keypoints from %s: frame %d: %v",
		e.Path, e.Frame, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// person is the first entry of a frame, any other fields are ignored
type person struct {
	Keypoints *[][]*float64 `json:"keypoints"`
}

// Load reads the keypoint sequence from the given JSON file.  The top level
// is an array of frame entries, each entry an array whose first element is
// an object holding a keypoints field of [x, y] pairs.
func Load(file string) ([]Frame, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, &LoadError{Path: file, Frame: -1, Err: err}
	}

	defer f.Close()

	frames, err := Decode(f)

	if err != nil {
		var lerr *LoadError

		if errors.As(err, &lerr) {
			lerr.Path = file
			return nil, lerr
		}

		return nil, &LoadError{Path: file, Frame: -1, Err: err}
	}

	return frames, nil
}

// Decode parses a keypoint sequence from r.  See Load for the format.
func Decode(r io.Reader) ([]Frame, error) {

	var entries *[]json.RawMessage

	dec := json.NewDecoder(r)

	if err := dec.Decode(&entries); err != nil {
		return nil, &LoadError{Frame: -1,
			Err: fmt.Errorf("expected top level array of frames: %w", err)}
	}

	if entries == nil {
		return nil, &LoadError{Frame: -1, Err: errors.New("expected top level array of frames")}
	}

	// only whitespace may follow the array
	if _, err := dec.Token(); err != io.EOF {
		return nil, &LoadError{Frame: -1, Err: errors.New("unexpected data after frames array")}
	}

	frames := make([]Frame, 0, len(*entries))

	for i, entry := range *entries {

		kps, err := decodeEntry(entry)

		if err != nil {
			return nil, &LoadError{Frame: i, Err: err}
		}

		frames = append(frames, Frame{Index: i, Keypoints: kps})
	}

	return frames, nil
}

// decodeEntry extracts the keypoints of the primary person in a frame entry
func decodeEntry(entry json.RawMessage) ([]Keypoint, error) {

	var people []json.RawMessage

	if err := json.Unmarshal(entry, &people); err != nil {
		return nil, fmt.Errorf("expected array of people: %w", err)
	}

	if len(people) == 0 {
		return nil, errors.New("frame has no people")
	}

	var p person

	if err := json.Unmarshal(people[0], &p); err != nil {
		return nil, fmt.Errorf("expected person object: %w", err)
	}

	if p.Keypoints == nil {
		return nil, errors.New("missing keypoints field")
	}

	kps := make([]Keypoint, len(*p.Keypoints))

	for j, pair := range *p.Keypoints {

		if len(pair) != 2 {
			return nil, fmt.Errorf("keypoint %d has %d values, expected 2", j, len(pair))
		}

		// json leaves a float untouched on null so check for it explicitly
		if pair[0] == nil || pair[1] == nil {
			return nil, fmt.Errorf("keypoint %d has a null coordinate", j)
		}

		kps[j] = Keypoint{X: *pair[0], Y: *pair[1]}
	}

	return kps, nil
}
