// Package session owns one editing session: the document being built, its
// style overrides, the active color scheme, selection, and the flags that
// gate saving and publishing. All mutations flow through here so the dirty
// flag can never drift from the state it describes.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canvasite/canvasite-terminal/pkg/builder"
	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/media"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/publish"
	"github.com/canvasite/canvasite-terminal/pkg/styles"
)

// Tab identifies the active builder view.
type Tab string

const (
	TabEditor    Tab = "editor"
	TabPreview   Tab = "preview"
	TabTemplates Tab = "templates"
	TabSettings  Tab = "settings"
	TabStyles    Tab = "styles"
)

// Tabs lists the builder tabs in display order.
func Tabs() []Tab {
	return []Tab{TabEditor, TabPreview, TabTemplates, TabSettings, TabStyles}
}

// Publish gate errors. All are user-recoverable.
var (
	ErrEmptySite       = errors.New("cannot publish an empty website, add some content first")
	ErrUnnamedSite     = errors.New("the website needs a name before publishing")
	ErrPublishInFlight = errors.New("a publish is already in progress")
)

// DragPayload is the full palette descriptor carried through a drag. A
// payload without a kind is malformed and must not create a section.
type DragPayload struct {
	Kind     models.SectionKind
	Name     string
	Icon     string
	Category models.Category
}

// PayloadFor builds the drag payload for a palette item.
func PayloadFor(item models.PaletteItem) DragPayload {
	return DragPayload{Kind: item.Kind, Name: item.Name, Icon: item.Icon, Category: item.Category}
}

// Config wires a session's collaborators. Zero-value fields get working
// defaults.
type Config struct {
	Transport publish.Transport
	Resolver  media.Resolver
	Clock     builder.Clock
	Scheme    models.SchemeName
}

// Session is the single owner of the document and the style store.
type Session struct {
	doc    *models.Document
	styles *styles.Store
	scheme models.SchemeName

	activeTab  Tab
	selectedID string
	dragging   bool
	dirty      bool
	publishing bool

	transport publish.Transport
	resolver  media.Resolver
	now       builder.Clock
}

// New creates a clean session around an empty document.
func New(cfg Config) *Session {
	if cfg.Transport == nil {
		cfg.Transport = publish.DefaultSimulator()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Scheme == "" {
		cfg.Scheme = models.SchemeBlue
	}
	s := &Session{
		doc:       models.NewDocument(),
		scheme:    cfg.Scheme,
		activeTab: TabEditor,
		transport: cfg.Transport,
		resolver:  cfg.Resolver,
		now:       cfg.Clock,
	}
	s.styles = styles.NewStore(s.MarkDirty)
	return s
}

// Document returns the current document. Callers must treat it as
// read-only; mutations go through the session.
func (s *Session) Document() *models.Document { return s.doc }

// Styles returns the override store. Its mutations mark the session dirty.
func (s *Session) Styles() *styles.Store { return s.styles }

// Scheme returns the active color scheme name.
func (s *Session) Scheme() models.SchemeName { return s.scheme }

// ApplyScheme switches the preview color scheme. A scheme change is a site
// change: it marks the session dirty.
func (s *Session) ApplyScheme(name models.SchemeName) {
	s.scheme = name
	s.MarkDirty()
}

// ActiveTab returns the visible builder tab.
func (s *Session) ActiveTab() Tab { return s.activeTab }

// SetActiveTab switches views. Navigation never touches the dirty flag.
func (s *Session) SetActiveTab(t Tab) { s.activeTab = t }

// Selected returns the selected section id, or "".
func (s *Session) Selected() string { return s.selectedID }

// Select marks a section as selected for the styling panel. The id must
// reference an existing section.
func (s *Session) Select(id string) error {
	if !s.doc.HasSection(id) {
		return fmt.Errorf("no section with id %s", id)
	}
	s.selectedID = id
	return nil
}

// ClearSelection deselects.
func (s *Session) ClearSelection() { s.selectedID = "" }

// IsDirty reports whether unsaved changes exist.
func (s *Session) IsDirty() bool { return s.dirty }

// MarkDirty records that the site deviates from its last saved state.
func (s *Session) MarkDirty() { s.dirty = true }

// IsDragging reports whether a palette drag is in progress.
func (s *Session) IsDragging() bool { return s.dragging }

// IsPublishing reports whether a publish round trip is in flight.
func (s *Session) IsPublishing() bool { return s.publishing }

// AppendSection materializes a section of the given kind at the end of the
// document.
func (s *Session) AppendSection(kind models.SectionKind, c models.Content) models.Section {
	doc, section := builder.AppendSection(s.doc, kind, c, s.now)
	s.doc = doc
	s.MarkDirty()
	return section
}

// RemoveSection drops the section with the given id and clears the
// selection if it pointed at it. Removing an absent id is a no-op and
// leaves the dirty flag alone.
func (s *Session) RemoveSection(id string) bool {
	doc, removed := builder.RemoveSection(s.doc, id)
	if !removed {
		return false
	}
	s.doc = doc
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.MarkDirty()
	return true
}

// RenameSite sets the site name. Blank names are tolerated until publish.
func (s *Session) RenameSite(name string) {
	s.doc = builder.RenameSite(s.doc, name)
	s.MarkDirty()
}

// ApplyTemplate replaces the document with the template's canonical
// sections. The previous selection cannot survive a full replace.
func (s *Session) ApplyTemplate(tmpl models.Template) {
	s.doc = builder.ApplyTemplate(s.doc, tmpl, s.now)
	s.selectedID = ""
	s.MarkDirty()
}

// BeginDrag starts a palette drag. The payload travels with the caller
// until it is dropped or the drag is aborted.
func (s *Session) BeginDrag(DragPayload) {
	s.dragging = true
}

// EndDrag clears the drag flag, on successful and aborted drags alike.
func (s *Session) EndDrag() { s.dragging = false }

// DropOnCanvas turns a drag payload into an appended section with the
// kind's default content. A malformed payload (missing kind) mutates
// nothing and is reported to the caller.
func (s *Session) DropOnCanvas(payload DragPayload) (models.Section, error) {
	s.dragging = false
	if payload.Kind == "" {
		return models.Section{}, errors.New("drag payload has no section kind")
	}
	return s.AppendSection(payload.Kind, content.DefaultContentFor(payload.Kind)), nil
}

// InsertLibraryImage appends an image section referencing a media library
// asset, bypassing the drag flow but keeping append semantics.
func (s *Session) InsertLibraryImage(mediaID string) (models.Section, error) {
	if s.resolver == nil {
		return models.Section{}, errors.New("no media library configured")
	}
	url, alt, err := s.resolver.Resolve(mediaID)
	if err != nil {
		return models.Section{}, fmt.Errorf("insert from media library: %w", err)
	}
	c := models.Content{
		Src:              url,
		Alt:              alt,
		FromMediaLibrary: true,
		MediaID:          mediaID,
	}
	return s.AppendSection(models.KindImage, c), nil
}

// Save clears the dirty flag. It reports false, without state change, when
// there is nothing to save.
func (s *Session) Save() bool {
	if !s.dirty {
		return false
	}
	s.dirty = false
	return true
}

// BeginPublish runs the publish gate: the site must have sections and a
// non-blank name, and only one publish may be in flight. On success the
// session enters the publishing state and the caller owes it a
// CompletePublish or FailPublish.
func (s *Session) BeginPublish() error {
	if s.publishing {
		return ErrPublishInFlight
	}
	if len(s.doc.Sections) == 0 {
		return ErrEmptySite
	}
	if strings.TrimSpace(s.doc.Name) == "" {
		return ErrUnnamedSite
	}
	s.publishing = true
	return nil
}

// CompletePublish records a successful publish: the site is live, nothing
// is unsaved.
func (s *Session) CompletePublish() {
	s.publishing = false
	s.dirty = false
}

// FailPublish leaves the dirty flag as it was; the user can retry
// immediately.
func (s *Session) FailPublish() {
	s.publishing = false
}

// Publish runs the whole publish flow synchronously: gate, transport round
// trip, state transition. The TUI splits this into BeginPublish plus a
// background command; the CLI uses this directly.
func (s *Session) Publish(ctx context.Context) (string, error) {
	if err := s.BeginPublish(); err != nil {
		return "", err
	}
	url, err := s.transport.Publish(ctx, s.doc)
	if err != nil {
		s.FailPublish()
		return "", fmt.Errorf("publishing failed: %w", err)
	}
	s.CompletePublish()
	return url, nil
}
