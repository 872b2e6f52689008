package shell

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) Listing(directory string) (listing []contracts.FileInfo, err error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue // removed while listing
		}
		listing = append(listing, newFileInfo(filepath.Join(directory, entry.Name()), info))
	}
	return listing, nil
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return newFileInfo(path, info), nil
}

func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (this *DiskFileSystem) MakeDirectories(path string) error {
	return os.MkdirAll(path, 0755)
}

func (this *DiskFileSystem) Delete(path string) error {
	return os.Remove(path)
}

func (this *DiskFileSystem) DeleteAll(path string) error {
	return os.RemoveAll(path)
}

////////////////////////////////////////

type FileInfo struct {
	path  string
	size  int64
	mod   time.Time
	isDir bool
}

func newFileInfo(path string, info os.FileInfo) FileInfo {
	return FileInfo{path: path, size: info.Size(), mod: info.ModTime(), isDir: info.IsDir()}
}

func (this FileInfo) Path() string       { return this.path }
func (this FileInfo) Name() string       { return filepath.Base(this.path) }
func (this FileInfo) Size() int64        { return this.size }
func (this FileInfo) ModTime() time.Time { return this.mod }
func (this FileInfo) IsDir() bool        { return this.isDir }
