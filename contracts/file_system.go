package contracts

import (
	"io"
	"time"
)

type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type Deleter interface {
	Delete(path string) error
}

type TreeDeleter interface {
	DeleteAll(path string) error
}

type DirectoryMaker interface {
	MakeDirectories(path string) error
}

type DirectoryLister interface {
	Listing(directory string) ([]FileInfo, error)
}

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileInfo interface {
	Path() string
	Name() string
	Size() int64
	ModTime() time.Time
	IsDir() bool
}

type FileSystem interface {
	FileCreator
	Deleter
	TreeDeleter
	DirectoryMaker
	DirectoryLister
	FileChecker
}
