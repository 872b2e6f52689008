package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

type inMemoryFileSystem struct {
	fileSystem map[string]*file
	errCreate  map[string]error
	errDelete  map[string]error
	errListing map[string]error
	errMakeDir map[string]error
}

func newInMemoryFileSystem() *inMemoryFileSystem {
	return &inMemoryFileSystem{
		fileSystem: make(map[string]*file),
		errCreate:  make(map[string]error),
		errDelete:  make(map[string]error),
		errListing: make(map[string]error),
		errMakeDir: make(map[string]error),
	}
}

func (this *inMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	file, found := this.fileSystem[filepath.Clean(path)]
	if !found {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return file, nil
}

func (this *inMemoryFileSystem) Listing(directory string) (files []contracts.FileInfo, err error) {
	directory = filepath.Clean(directory)
	if err = this.errListing[directory]; err != nil {
		return nil, err
	}
	if _, found := this.fileSystem[directory]; !found {
		return nil, &os.PathError{Op: "open", Path: directory, Err: os.ErrNotExist}
	}
	for path, file := range this.fileSystem {
		if path != directory && filepath.Dir(path) == directory {
			files = append(files, file)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files, nil
}

func (this *inMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	if err := this.errCreate[filepath.Clean(path)]; err != nil {
		return nil, err
	}
	this.WriteFile(path, nil)
	return this.fileSystem[filepath.Clean(path)], nil
}

func (this *inMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	file, found := this.fileSystem[filepath.Clean(path)]
	if !found || file.isDir {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return file.contents, nil
}

func (this *inMemoryFileSystem) Delete(path string) error {
	path = filepath.Clean(path)
	if err := this.errDelete[path]; err != nil {
		return err
	}
	file, found := this.fileSystem[path]
	if !found {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	if file.isDir {
		return fmt.Errorf("remove %s: is a directory", path)
	}
	delete(this.fileSystem, path)
	return nil
}

func (this *inMemoryFileSystem) DeleteAll(path string) error {
	path = filepath.Clean(path)
	if err := this.errDelete[path]; err != nil {
		return err
	}
	prefix := path + string(filepath.Separator)
	for existing := range this.fileSystem {
		if existing == path || strings.HasPrefix(existing, prefix) {
			delete(this.fileSystem, existing)
		}
	}
	return nil
}

func (this *inMemoryFileSystem) MakeDirectories(path string) error {
	path = filepath.Clean(path)
	if err := this.errMakeDir[path]; err != nil {
		return err
	}
	for current := path; ; current = filepath.Dir(current) {
		if _, found := this.fileSystem[current]; !found {
			this.fileSystem[current] = &file{path: current, isDir: true, mod: inMemoryModTime}
		}
		if filepath.Dir(current) == current {
			return nil
		}
	}
}

func (this *inMemoryFileSystem) WriteFile(path string, content []byte) {
	path = filepath.Clean(path)
	_ = this.MakeDirectories(filepath.Dir(path))
	this.fileSystem[path] = &file{path: path, contents: content, mod: inMemoryModTime}
}

func (this *inMemoryFileSystem) contents(path string) []byte {
	raw, _ := this.ReadFile(path)
	return raw
}

func (this *inMemoryFileSystem) exists(path string) bool {
	_, found := this.fileSystem[filepath.Clean(path)]
	return found
}

/////////////////////////////////////////////////

type file struct {
	path     string
	contents []byte
	isDir    bool
	mod      time.Time
}

var inMemoryModTime = time.Date(2024, 8, 14, 11, 7, 45, 0, time.UTC)

func (this *file) Path() string       { return this.path }
func (this *file) Name() string       { return filepath.Base(this.path) }
func (this *file) Size() int64        { return int64(len(this.contents)) }
func (this *file) ModTime() time.Time { return this.mod }
func (this *file) IsDir() bool        { return this.isDir }

func (this *file) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *file) Close() error {
	return nil
}

/////////////////////////////////////////////////

type FakeEnvironment map[string]string

func (this FakeEnvironment) LookupEnv(key string) (value string, set bool) {
	value, set = this[key]
	return value, set
}

func (this FakeEnvironment) Environ() (entries []string) {
	for key, value := range this {
		entries = append(entries, key+"="+value)
	}
	sort.Strings(entries)
	return entries
}

/////////////////////////////////////////////////

type failingStore struct {
	contracts.KeyValueStore
	err      error
	attempts int
}

func (this *failingStore) Set(contracts.Namespace, string, contracts.Value) error {
	this.attempts++
	return this.err
}
