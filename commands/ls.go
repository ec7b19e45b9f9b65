package commands

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/spf13/afero"
	getopt "github.com/pborman/getopt/v2"
)

// Ls lists directory contents.
func Ls(proc *Process) int {
	opts := getopt.New()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	longListing := opts.Bool('l', "use a long listing format")
	humanSize := opts.BoolLong("human-readable", 'h', "print human readable sizes")
	lineWidth := opts.IntLong("width", 'w', proc.PTY.Width, "set the column width, 0 is infinite")
	helpOpt := opts.BoolLong("help", '?', "show help and exit")

	var color ColorPrinter
	color.Init(opts, proc)

	if err := opts.Getopt(proc.Args, nil); err != nil || *helpOpt {
		w := proc.Stderr
		if err != nil {
			proc.LogInvalidInvocation(err)
			fmt.Fprintf(w, "ls: %v\n", err)
		}
		fmt.Fprintln(w, "Usage: ls [OPTION]... [DIR]...")
		fmt.Fprintln(w, "List information about the DIRs (the current directory by default).")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		opts.PrintOptions(w)
		if err != nil {
			return 1
		}
		return 0
	}

	// Initialize arguments
	directoriesToList := opts.Args()
	if len(directoriesToList) == 0 {
		directoriesToList = append(directoriesToList, ".")
	}
	sort.Strings(directoriesToList)

	showDirectoryNames := len(directoriesToList) > 1

	sizeFmt := func(bytes int64) string {
		return fmt.Sprintf("%d", bytes)
	}
	if *humanSize {
		sizeFmt = BytesToHuman
	}

	if *lineWidth <= 0 {
		*lineWidth = math.MaxInt32
	}

	exitCode := 0
	w := proc.Stdout

	for dirIdx, directory := range directoriesToList {
		allPaths, err := afero.ReadDir(proc.FS(), proc.resolve(directory))
		if err != nil {
			fmt.Fprintf(proc.Stderr, "ls: %s: %v\n", directory, unwrapPathError(err))
			exitCode = 1
			continue
		}

		var totalSize int64
		var paths []os.FileInfo
		for _, path := range allPaths {
			if !*listAll && strings.HasPrefix(path.Name(), ".") {
				continue
			}
			paths = append(paths, path)
			totalSize += path.Size()
		}

		// afero.ReadDir sorts by name already.

		if showDirectoryNames {
			if dirIdx > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", directory)
		}

		if *longListing {
			fmt.Fprintf(w, "total %d\n", totalSize)
			tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
			for _, f := range paths {
				hardLinks := 1
				if f.IsDir() {
					hardLinks = 2
				}

				// Include time if current year.
				currentYear := time.Now().Year()
				modTime := f.ModTime().Format("Jan _2 2006")
				if f.ModTime().Year() >= currentYear {
					modTime = f.ModTime().Format("Jan _2 15:04")
				}

				uid, gid := getUIDGID(f)
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					f.Mode().String(),
					hardLinks,
					uid2name(uid),
					gid2name(gid),
					sizeFmt(f.Size()),
					modTime,
					color.Sprintf(Dircolor(f), "%s", f.Name()))
			}
			tw.Flush()
			continue
		}

		if len(paths) == 0 {
			continue
		}

		colWidths := columnize(paths, *lineWidth)
		cols := len(colWidths)
		rows := len(paths) / cols
		if len(paths)%cols > 0 {
			rows++
		}

		for row := 0; row < rows; row++ {
			for col, width := range colWidths {
				index := (col * rows) + row
				if index >= len(paths) {
					break
				}
				// Add padding if there was a column before this.
				if col > 0 {
					fmt.Fprint(w, "  ")
				}
				entry := paths[index]
				name := entry.Name()
				fmt.Fprint(w, color.Sprintf(Dircolor(entry), "%s", name))

				// Pad for alignment unless this is the last entry on the row.
				nextIndex := ((col + 1) * rows) + row
				if col+1 < cols && nextIndex < len(paths) {
					fmt.Fprint(w, strings.Repeat(" ", width-len(name)))
				}
			}
			fmt.Fprintln(w)
		}
	}

	return exitCode
}

// resolve makes relative paths absolute against the working directory so
// they work with file systems that ignore the process's directory.
func (p *Process) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Wd(), path)
}

func unwrapPathError(err error) error {
	if pathErr, ok := err.(*fs.PathError); ok {
		return pathErr.Err
	}
	return err
}

// Dircolor picks the color of a directory entry: directories are blue,
// symlinks are green and everything else is yellow.
func Dircolor(fileInfo os.FileInfo) *fcolor.Color {
	switch {
	case fileInfo.IsDir():
		return ColorBoldBlue
	case fileInfo.Mode()&fs.ModeSymlink != 0:
		return ColorBoldGreen
	default:
		return ColorYellow
	}
}

func columnize(paths []fs.FileInfo, screenWidth int) []int {
	numFiles := len(paths)
	if numFiles == 0 {
		return []int{0}
	}

	const colPadding = 2

	displayLengths := make([]int, len(paths))
	for i, p := range paths {
		displayLengths[i] = len(p.Name())
	}

	// Start with maximum number of columns and work down until all the data fits.
	// 3 is the minimum column width, 1 char filename + 2 padding.
	columns := screenWidth / (1 + colPadding)
	if columns > numFiles {
		columns = numFiles
	}
	if columns < 1 {
		columns = 1
	}

	var maximums []int // Holds maximum size of a name in the column.
	for ; columns >= 1; columns-- {
		rows := numFiles / columns
		if numFiles%columns > 0 {
			rows++
		}
		// Skip layouts that leave trailing columns empty.
		if (numFiles+rows-1)/rows != columns {
			continue
		}

		maximums = make([]int, columns)
		total := (columns - 1) * colPadding
		for i, nameLen := range displayLengths {
			if prevMax := maximums[i/rows]; nameLen > prevMax {
				maximums[i/rows] = nameLen
				total = total - prevMax + nameLen
			}
		}

		if total <= screenWidth || columns == 1 {
			return maximums
		}
	}

	return maximums
}

func getUIDGID(fileInfo os.FileInfo) (uid, gid int) {
	switch v := (fileInfo.Sys()).(type) {
	case *syscall.Stat_t:
		return int(v.Uid), int(v.Gid)
	default:
		return os.Getuid(), os.Getgid()
	}
}

func uid2name(uid int) string {
	if u, err := user.LookupId(strconv.Itoa(uid)); err == nil {
		return u.Username
	}
	return strconv.Itoa(uid)
}

func gid2name(gid int) string {
	if g, err := user.LookupGroupId(strconv.Itoa(gid)); err == nil {
		return g.Name
	}
	return strconv.Itoa(gid)
}

var _ ProcessFunc = Ls

func init() {
	mustAddCmd("ls", Ls)
}
