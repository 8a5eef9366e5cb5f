package fs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/articlemd"
)

// ReadExamples reads labeled training examples from r. Two layouts are
// accepted: a single JSON array of {"text", "label"} objects, or one such
// object per line (JSON lines). Blank lines are ignored in the latter.
// Returns ETRAINING if the data is malformed or an example is invalid.
func ReadExamples(r io.Reader) ([]*articlemd.LabeledExample, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "training data is empty")
	} else if err != nil {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "read training data: %v", err)
	}

	var examples []*articlemd.LabeledExample
	if first == '[' {
		if err := json.NewDecoder(br).Decode(&examples); err != nil {
			return nil, articlemd.Errorf(articlemd.ETRAINING, "decode training data: %v", err)
		}
	} else {
		examples, err = readJSONLines(br)
		if err != nil {
			return nil, err
		}
	}

	for i, ex := range examples {
		if ex == nil {
			return nil, articlemd.Errorf(articlemd.ETRAINING, "example %d is null", i+1)
		}
		if err := ex.Validate(); err != nil {
			return nil, articlemd.Errorf(articlemd.ETRAINING, "example %d: %s", i+1, articlemd.ErrorMessage(err))
		}
	}
	return examples, nil
}

func readJSONLines(r io.Reader) ([]*articlemd.LabeledExample, error) {
	var examples []*articlemd.LabeledExample

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var ex articlemd.LabeledExample
		if err := json.Unmarshal(b, &ex); err != nil {
			return nil, articlemd.Errorf(articlemd.ETRAINING, "decode training data line %d: %v", line, err)
		}
		examples = append(examples, &ex)
	}
	if err := sc.Err(); err != nil {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "read training data: %v", err)
	}
	return examples, nil
}

// peekNonSpace discards leading whitespace and returns the next byte
// without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// LoadExamples reads labeled training examples from the file at path.
func LoadExamples(path string) ([]*articlemd.LabeledExample, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, articlemd.Errorf(articlemd.ENOTFOUND, "training data file %s does not exist", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadExamples(f)
}
