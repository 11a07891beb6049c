package app

import (
	"fmt"
	"io"

	"github.com/oshokin/utilkit/platform"
)

// notSupported is printed for directories the host platform does not have.
const notSupported = "(N/A)"

// ExecuteDirsCommand prints the well-known per-user directories of the host.
func ExecuteDirsCommand(w io.Writer, env platform.Environment) error {
	home, err := platform.HomeDir(env)
	if err != nil {
		return err
	}

	temp, err := platform.TempDir(env)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"os", env.OS()},
		{"user", env.Username()},
		{"home", home},
		{"appdata", orNotSupported(platform.AppDataDir(env, true))},
		{"localappdata", orNotSupported(platform.AppDataDir(env, false))},
		{"temp", temp},
	}

	for _, row := range rows {
		if _, err = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return nil
}

func orNotSupported(dir string, err error) string {
	if err != nil {
		return notSupported
	}

	return dir
}
