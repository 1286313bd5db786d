package main

import "io/fs"

// FS is what both embed.FS and os.DirFS() provide, so data files are read the
// same way whether they are embedded in the executable or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
