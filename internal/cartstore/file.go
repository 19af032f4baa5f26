package cartstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/storefront/pkg/cart"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
)

// record is the persisted cart document. The shape matches the record prior
// storefront clients wrote, so existing carts rehydrate unchanged.
type record struct {
	Items []cart.Item `json:"items"`
}

// File is a cart.Storage holding one JSON record on disk. Writes go through
// a temp file and rename so a crash mid-write never corrupts the record.
// There is no cross-process locking; the last writer wins.
type File struct {
	path string
}

// NewFile creates a file store at the given path, creating parent
// directories as needed.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.NewValidationError("path", path, "cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return nil, errors.WrapStorage("create", filepath.Dir(path), err)
	}
	return &File{path: path}, nil
}

// DefaultPath returns the per-user location of the cart record.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WrapStorage("locate", "", err)
	}
	return filepath.Join(dir, constants.ConfigDirName, constants.CartFileName), nil
}

// Path returns the location of the persisted record.
func (f *File) Path() string {
	return f.path
}

// Load implements cart.Storage. A missing record is an empty cart, not an
// error; only unreadable or unparseable records fail.
func (f *File) Load() ([]cart.Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapStorage("load", f.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.NewStorageError("load", f.path, errors.WrapParse("json", f.path, err))
	}
	return rec.Items, nil
}

// Save implements cart.Storage, atomically replacing the record.
func (f *File) Save(items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	data, err := json.MarshalIndent(record{Items: items}, "", "  ")
	if err != nil {
		return errors.WrapStorage("save", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".cart-*.tmp")
	if err != nil {
		return errors.WrapStorage("save", f.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapStorage("save", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapStorage("save", f.path, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.WrapStorage("save", f.path, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.WrapStorage("save", f.path, err)
	}
	return nil
}
