// Package media models the media library the builder pulls image assets
// from. The library backend proper (upload transport, image editing) lives
// elsewhere; the builder only needs to resolve an asset id to something
// displayable, plus enough bookkeeping to accept edited assets back.
package media

import (
	"fmt"
	"sort"
	"time"
)

// Asset is one stored file the builder can reference from an image section.
type Asset struct {
	ID           string
	Name         string
	MIMEType     string
	URL          string
	ThumbnailURL string
	Folder       string
	Size         int64
	Versions     []Version
}

// Version records one revision of an asset, typically produced by the
// image editor handing back a final reference and byte size.
type Version struct {
	URL     string
	Size    int64
	Created time.Time
}

// Resolver turns an asset id into a displayable reference. This is the
// only capability the page core depends on.
type Resolver interface {
	Resolve(mediaID string) (url, alt string, err error)
}

// Library is an in-memory asset store satisfying Resolver.
type Library struct {
	assets map[string]*Asset
	now    func() time.Time
}

// NewLibrary returns an empty library. now is injectable for tests; nil
// means time.Now.
func NewLibrary(now func() time.Time) *Library {
	if now == nil {
		now = time.Now
	}
	return &Library{assets: make(map[string]*Asset), now: now}
}

// SampleLibrary is pre-seeded with the demo asset the "select from media
// library" shortcut inserts.
func SampleLibrary() *Library {
	l := NewLibrary(nil)
	l.Put(&Asset{
		ID:           fmt.Sprintf("media-%d", time.Now().UnixMilli()),
		Name:         "Sample Media Image",
		MIMEType:     "image/jpeg",
		URL:          "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		ThumbnailURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	})
	return l
}

// Put stores or replaces an asset.
func (l *Library) Put(a *Asset) {
	l.assets[a.ID] = a
}

// Get returns the asset with the given id.
func (l *Library) Get(id string) (*Asset, bool) {
	a, ok := l.assets[id]
	return a, ok
}

// Resolve implements Resolver. Unknown ids are an error; callers decide
// whether that aborts the insert or falls back.
func (l *Library) Resolve(mediaID string) (string, string, error) {
	a, ok := l.assets[mediaID]
	if !ok {
		return "", "", fmt.Errorf("media asset %s not found", mediaID)
	}
	return a.URL, a.Name, nil
}

// AddVersion appends a revision to an existing asset and makes it current.
// The image editor calls this when it hands back an edited file.
func (l *Library) AddVersion(id, url string, size int64) error {
	a, ok := l.assets[id]
	if !ok {
		return fmt.Errorf("media asset %s not found", id)
	}
	a.Versions = append(a.Versions, Version{URL: url, Size: size, Created: l.now()})
	a.URL = url
	a.Size = size
	return nil
}

// List returns all assets in a folder ("" means the root), sorted by name.
func (l *Library) List(folder string) []*Asset {
	var out []*Asset
	for _, a := range l.assets {
		if a.Folder == folder {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// First returns an arbitrary-but-stable asset, used by the insert shortcut
// when no explicit id is given.
func (l *Library) First() (*Asset, bool) {
	ids := make([]string, 0, len(l.assets))
	for id := range l.assets {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, false
	}
	sort.Strings(ids)
	return l.assets[ids[0]], true
}
