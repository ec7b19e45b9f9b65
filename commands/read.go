package commands

import (
	"fmt"
	"io"
)

// Read prints a file. Executables get their metadata printed instead unless
// -f is given.
func Read(proc *Process) int {
	cmd := &SimpleCommand{
		Use:   "read [-f] FILE",
		Short: "Print the contents of a file.",
	}

	opts := cmd.Flags()
	force := opts.BoolLong("force", 'f', "print the contents even if the file is executable")

	var color ColorPrinter
	color.Init(opts, proc)

	return cmd.Run(proc, func() int {
		args := opts.Args()
		if len(args) != 1 {
			fmt.Fprintln(proc.Stderr, "read: expected exactly one FILE")
			return 1
		}

		name := args[0]
		path := proc.resolve(name)
		info, err := proc.FS().Stat(path)
		if err != nil {
			fmt.Fprintf(proc.Stderr, "read: %s: %v\n", name, unwrapPathError(err))
			return 1
		}
		if info.IsDir() {
			fmt.Fprintf(proc.Stderr, "read: %s: is a directory\n", name)
			return 1
		}

		if info.Mode().Perm()&0111 != 0 && !*force {
			fmt.Fprintf(proc.Stdout, "read: %s is executable, showing metadata (use -f to read it)\n", name)
			fmt.Fprintf(proc.Stdout, "%s: %s\n", color.Sprintf(ColorBoldBlue, "Last Modified"), info.ModTime().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(proc.Stdout, "%s: %s\n", color.Sprintf(ColorBoldBlue, "Permissions"), info.Mode().Perm())
			fmt.Fprintf(proc.Stdout, "%s: %s\n", color.Sprintf(ColorBoldBlue, "Size"), BytesToHuman(info.Size()))
			return 0
		}

		fd, err := proc.FS().Open(path)
		if err != nil {
			fmt.Fprintf(proc.Stderr, "read: %s: %v\n", name, unwrapPathError(err))
			return 1
		}
		defer fd.Close()

		if _, err := io.Copy(proc.Stdout, fd); err != nil {
			fmt.Fprintf(proc.Stderr, "read: %s: %v\n", name, err)
			return 1
		}
		return 0
	})
}

var _ ProcessFunc = Read

func init() {
	mustAddCmd("read", Read)
}
