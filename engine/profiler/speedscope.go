//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var ErrNoEvents = errors.New("profiler: no events recorded")

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// Dump writes the recorded scopes to path in speedscope's evented format.
func Dump(path string) error {
	doc, err := buildProfile(ring.snapshot(), scopeNames())
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// OpenProfilerGraph dumps to the temp dir and launches speedscope on the file.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "strata.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	if err := exec.Command("speedscope", path).Start(); err != nil {
		log.Warn("could not launch speedscope", "path", path, "err", err)
	}
	return path, nil
}

// buildProfile pairs open/close events in write order. Closes that do not
// match the innermost open scope are dropped; scopes still open at the end
// are closed at the last timestamp.
func buildProfile(evs []event, names []string) (*ssFile, error) {
	if len(evs) == 0 {
		return nil, ErrNoEvents
	}

	base := evs[0].at
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)
	last := int64(0)

	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.scope})
			stack = append(stack, e.scope)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.scope {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.scope})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "strata frame loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "strata-profiler",
		Name:     "strata capture",
	}, nil
}
