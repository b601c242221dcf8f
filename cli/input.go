package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"xdisc/bytesval"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ReadHexArg returns the hex argument at idx, or reads it from stdin when
// the argument is missing.
func ReadHexArg(args []string, idx int) (bytesval.Bytes, error) {
	var raw string
	if len(args) > idx {
		raw = args[idx]
	} else {
		var rd io.Reader
		if isatty.IsTerminal(os.Stdin.Fd()) {
			rd = bytes.NewReader(readDataTTY())
		} else {
			rd = os.Stdin
		}
		data, err := ioutil.ReadAll(rd)
		if err != nil {
			return bytesval.Bytes{}, errors.Wrap(err, "error reading stdin")
		}
		raw = string(data)
	}

	b, err := bytesval.FromHex(strings.Join(strings.Fields(raw), ""))
	if err != nil {
		return bytesval.Bytes{}, errors.Wrap(err, "invalid hex input")
	}
	return b, nil
}

func readDataTTY() []byte {
	fmt.Println("Paste or type the hex data below.")
	fmt.Println("When you are finished, press Ctrl+D.")

	var buf bytes.Buffer
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
	}

	return buf.Bytes()
}
