package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"golang.org/x/term"
)

type loggerKey struct{}

// utf8BOM is the UTF-8 byte order mark that some editors add to files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// readPassword prompts on a terminal with echo disabled; any other input is
// read up to the first line break, minus a leading BOM.
func readPassword(stdin io.Reader, prompt io.Writer) ([]byte, error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		passwd, err := readLine(stdin)
		return bytes.TrimPrefix(passwd, utf8BOM), err
	}
	if _, err := io.WriteString(prompt, "password: "); err != nil {
		return nil, err
	}
	passwd, err := term.ReadPassword(int(f.Fd())) //nolint:gosec // fd fits in int
	_, _ = io.WriteString(prompt, "\n")
	return passwd, err
}

// cloned from term.readPasswordLine.
func readLine(stdin io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte

	for {
		n, err := stdin.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\b':
				if len(ret) > 0 {
					ret = ret[:len(ret)-1]
				}
			case '\n':
				if runtime.GOOS != "windows" {
					return ret, nil
				}
				// otherwise ignore \n
			case '\r':
				if runtime.GOOS == "windows" {
					return ret, nil
				}
				// otherwise ignore \r
			default:
				ret = append(ret, buf[0])
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return ret, nil
			}
			return ret, err
		}
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}
