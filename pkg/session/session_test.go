package session

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/models"
)

type fakeTransport struct {
	url   string
	err   error
	calls int
}

func (f *fakeTransport) Publish(ctx context.Context, site *models.Document) (string, error) {
	f.calls++
	return f.url, f.err
}

type fakeResolver struct {
	url string
	alt string
	err error
}

func (f *fakeResolver) Resolve(mediaID string) (string, string, error) {
	return f.url, f.alt, f.err
}

func testSession(t *testing.T, transport *fakeTransport, resolver *fakeResolver) *Session {
	t.Helper()
	cfg := Config{
		Clock: func() time.Time { return time.UnixMilli(1699999) },
	}
	if transport != nil {
		cfg.Transport = transport
	}
	if resolver != nil {
		cfg.Resolver = resolver
	}
	return New(cfg)
}

func TestNewSessionIsClean(t *testing.T) {
	s := testSession(t, nil, nil)

	if s.IsDirty() || s.IsDragging() || s.IsPublishing() {
		t.Errorf("fresh session has flags set: dirty=%v dragging=%v publishing=%v",
			s.IsDirty(), s.IsDragging(), s.IsPublishing())
	}
	if s.ActiveTab() != TabEditor {
		t.Errorf("active tab = %q", s.ActiveTab())
	}
	if s.Document().Name != "My New Website" {
		t.Errorf("document name = %q", s.Document().Name)
	}
}

func TestMutationsSetDirty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Session)
	}{
		{"append", func(s *Session) {
			s.AppendSection(models.KindText, models.Content{Body: "x"})
		}},
		{"remove", func(s *Session) {
			sec := s.AppendSection(models.KindText, models.Content{})
			s.Save()
			s.RemoveSection(sec.ID)
		}},
		{"rename", func(s *Session) { s.RenameSite("New Name") }},
		{"applyTemplate", func(s *Session) {
			s.ApplyTemplate(models.Template{Name: "Business"})
		}},
		{"applyScheme", func(s *Session) { s.ApplyScheme(models.SchemeGreen) }},
		{"setStyle", func(s *Session) {
			sec := s.AppendSection(models.KindText, models.Content{})
			s.Save()
			if err := s.Styles().Set(sec.ID, models.FieldFontSize, "24px"); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}},
		{"resetStyle", func(s *Session) {
			s.Save()
			s.Styles().ResetAll()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(t, nil, nil)
			tt.mutate(s)
			if !s.IsDirty() {
				t.Errorf("%s did not set the dirty flag", tt.name)
			}
		})
	}
}

func TestSave(t *testing.T) {
	s := testSession(t, nil, nil)

	if s.Save() {
		t.Error("Save on a clean session reported work")
	}

	s.RenameSite("Acme")
	if !s.Save() {
		t.Error("Save on a dirty session reported no-op")
	}
	if s.IsDirty() {
		t.Error("Save left the session dirty")
	}
	if s.Save() {
		t.Error("second Save reported work")
	}
}

func TestRemoveSectionClearsSelection(t *testing.T) {
	s := testSession(t, nil, nil)
	sec := s.AppendSection(models.KindHeader, models.Content{Title: "x"})
	other := s.AppendSection(models.KindText, models.Content{})

	if err := s.Select(sec.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}

	s.RemoveSection(sec.ID)
	if s.Selected() != "" {
		t.Errorf("selection = %q after removing selected section", s.Selected())
	}

	if err := s.Select(other.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}
	s.RemoveSection("header-404")
	if s.Selected() != other.ID {
		t.Error("removing an absent id disturbed the selection")
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := testSession(t, nil, nil)
	s.AppendSection(models.KindText, models.Content{})
	s.Save()

	if s.RemoveSection("text-404") {
		t.Error("removal of absent id reported success")
	}
	if s.IsDirty() {
		t.Error("no-op removal set the dirty flag")
	}
}

func TestSelectUnknownSection(t *testing.T) {
	s := testSession(t, nil, nil)
	if err := s.Select("header-404"); err == nil {
		t.Error("Select accepted an unknown id")
	}
}

func TestDragDropFlow(t *testing.T) {
	s := testSession(t, nil, nil)

	payload := PayloadFor(models.PaletteItem{
		Kind: models.KindHeader, Name: "Header", Icon: "HeaderIcon",
		Category: models.CategoryStructure,
	})
	s.BeginDrag(payload)
	if !s.IsDragging() {
		t.Fatal("BeginDrag did not set the drag flag")
	}

	section, err := s.DropOnCanvas(payload)
	if err != nil {
		t.Fatalf("DropOnCanvas: %v", err)
	}
	if s.IsDragging() {
		t.Error("drop left the drag flag set")
	}
	if len(s.Document().Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(s.Document().Sections))
	}
	if !strings.HasPrefix(section.ID, "header-") {
		t.Errorf("id = %q lacks the kind prefix", section.ID)
	}
	if !reflect.DeepEqual(section.Content, content.DefaultContentFor(models.KindHeader)) {
		t.Errorf("content = %+v", section.Content)
	}
	if !s.IsDirty() {
		t.Error("drop did not set the dirty flag")
	}
}

func TestDropMalformedPayload(t *testing.T) {
	s := testSession(t, nil, nil)
	s.BeginDrag(DragPayload{Name: "Broken"})

	_, err := s.DropOnCanvas(DragPayload{Name: "Broken"})
	if err == nil {
		t.Fatal("malformed payload accepted")
	}
	if len(s.Document().Sections) != 0 {
		t.Error("malformed drop created a section")
	}
	if s.IsDirty() {
		t.Error("malformed drop set the dirty flag")
	}
	if s.IsDragging() {
		t.Error("malformed drop left the drag flag set")
	}
}

func TestEndDragAbort(t *testing.T) {
	s := testSession(t, nil, nil)
	s.BeginDrag(DragPayload{Kind: models.KindText, Name: "Text"})
	s.EndDrag()
	if s.IsDragging() {
		t.Error("EndDrag did not clear the drag flag")
	}
	if len(s.Document().Sections) != 0 {
		t.Error("aborted drag created a section")
	}
}

func TestInsertLibraryImage(t *testing.T) {
	resolver := &fakeResolver{url: "https://cdn.example.com/a.jpg", alt: "Sample Media Image"}
	s := testSession(t, nil, resolver)

	section, err := s.InsertLibraryImage("media-1")
	if err != nil {
		t.Fatalf("InsertLibraryImage: %v", err)
	}
	c := section.Content
	if c.Src != resolver.url || c.Alt != resolver.alt {
		t.Errorf("content = %+v", c)
	}
	if !c.FromMediaLibrary || c.MediaID != "media-1" {
		t.Errorf("library attribution missing: %+v", c)
	}
	if section.Kind != models.KindImage {
		t.Errorf("kind = %q", section.Kind)
	}
	if !s.IsDirty() {
		t.Error("library insert did not set the dirty flag")
	}
}

func TestInsertLibraryImageNotFound(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("not found")}
	s := testSession(t, nil, resolver)

	if _, err := s.InsertLibraryImage("media-404"); err == nil {
		t.Fatal("expected error")
	}
	if len(s.Document().Sections) != 0 {
		t.Error("failed insert created a section")
	}
}

func TestPublishGateEmptySite(t *testing.T) {
	transport := &fakeTransport{url: "https://x.canvassite.com"}
	s := testSession(t, transport, nil)

	_, err := s.Publish(context.Background())
	if !errors.Is(err, ErrEmptySite) {
		t.Fatalf("err = %v, want ErrEmptySite", err)
	}
	if s.IsPublishing() {
		t.Error("failed gate left the publishing flag set")
	}
	if transport.calls != 0 {
		t.Error("gate failure still called the transport")
	}
}

func TestPublishGateBlankName(t *testing.T) {
	transport := &fakeTransport{}
	s := testSession(t, transport, nil)
	s.AppendSection(models.KindText, models.Content{Body: "x"})
	s.RenameSite("   ")

	_, err := s.Publish(context.Background())
	if !errors.Is(err, ErrUnnamedSite) {
		t.Fatalf("err = %v, want ErrUnnamedSite", err)
	}
	if transport.calls != 0 {
		t.Error("gate failure still called the transport")
	}
}

func TestPublishSuccess(t *testing.T) {
	transport := &fakeTransport{url: "https://acme-ab12.canvassite.com"}
	s := testSession(t, transport, nil)
	s.AppendSection(models.KindHeader, models.Content{Title: "x"})

	url, err := s.Publish(context.Background())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if url != transport.url {
		t.Errorf("url = %q", url)
	}
	if s.IsPublishing() {
		t.Error("publishing flag still set after completion")
	}
	if s.IsDirty() {
		t.Error("successful publish left the session dirty")
	}
}

func TestPublishFailureKeepsDirty(t *testing.T) {
	transport := &fakeTransport{err: errors.New("service unavailable")}
	s := testSession(t, transport, nil)
	s.AppendSection(models.KindHeader, models.Content{Title: "x"})

	_, err := s.Publish(context.Background())
	if err == nil {
		t.Fatal("expected failure")
	}
	if s.IsPublishing() {
		t.Error("publishing flag still set after failure")
	}
	if !s.IsDirty() {
		t.Error("failed publish cleared the dirty flag")
	}

	// Safe to retry immediately.
	transport.err = nil
	transport.url = "https://x.canvassite.com"
	if _, err := s.Publish(context.Background()); err != nil {
		t.Errorf("retry failed: %v", err)
	}
}

func TestPublishSingleInFlight(t *testing.T) {
	s := testSession(t, &fakeTransport{}, nil)
	s.AppendSection(models.KindHeader, models.Content{Title: "x"})

	if err := s.BeginPublish(); err != nil {
		t.Fatalf("BeginPublish: %v", err)
	}
	if err := s.BeginPublish(); !errors.Is(err, ErrPublishInFlight) {
		t.Errorf("second BeginPublish = %v, want ErrPublishInFlight", err)
	}
	if _, err := s.Publish(context.Background()); !errors.Is(err, ErrPublishInFlight) {
		t.Errorf("Publish while in flight = %v, want ErrPublishInFlight", err)
	}

	s.CompletePublish()
	if s.IsPublishing() {
		t.Error("CompletePublish did not clear the flag")
	}
	if err := s.BeginPublish(); err != nil {
		t.Errorf("publish after completion gated: %v", err)
	}
}

func TestDropThenTemplateScenario(t *testing.T) {
	s := testSession(t, nil, nil)

	payload := PayloadFor(models.PaletteItem{Kind: models.KindHeader, Name: "Header"})
	section, err := s.DropOnCanvas(payload)
	if err != nil {
		t.Fatalf("DropOnCanvas: %v", err)
	}
	doc := s.Document()
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if kind, ok := models.KindFromID(section.ID); !ok || kind != models.KindHeader {
		t.Errorf("id prefix of %q resolves to %q", section.ID, kind)
	}

	s.ApplyTemplate(models.Template{Name: "Portfolio"})
	doc = s.Document()
	if len(doc.Sections) != 4 {
		t.Errorf("sections after template = %d, want 4", len(doc.Sections))
	}
	if doc.Name != "My Portfolio Website" {
		t.Errorf("name = %q", doc.Name)
	}
	if s.Selected() != "" {
		t.Error("selection survived a full replace")
	}
}
