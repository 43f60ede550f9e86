package graph

import (
	"sort"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint digests a corpus snapshot: path and content of every file in
// path order. Two snapshots with equal fingerprints produce equal catalogs.
func Fingerprint(files []*ProjectFile) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	sorted := make([]*ProjectFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })
	for _, file := range sorted {
		if _, err := hash.Write([]byte(file.Path)); err != nil {
			return 0, err
		}
		if _, err := hash.Write([]byte{0}); err != nil {
			return 0, err
		}
		if _, err := hash.Write([]byte(file.Content)); err != nil {
			return 0, err
		}
	}
	return hash.Sum64(), nil
}
