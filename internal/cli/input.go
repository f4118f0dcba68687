package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// source is one named input.
type source struct {
	name string
	data []byte
}

// readSources reads each file in args, or stdin when args is empty. A "-"
// argument also means stdin.
func readSources(stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]source, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
			name = "<stdin>"
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		log.Debugf("read %s (%d bytes)", name, len(data))
		out = append(out, source{name: name, data: data})
	}
	return out, nil
}

func (s source) reader() io.Reader { return bytes.NewReader(s.data) }
