package inspector

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"webhook-lab/internal/catalog"
)

func TestSelection(t *testing.T) {
	in := New(catalog.Default().Events())
	ev, ok := in.Selected()
	if !ok || ev.ID != "evt_1" {
		t.Fatalf("expected evt_1 selected, got %q", ev.ID)
	}
	if !in.Select("evt_3") || in.Index() != 2 {
		t.Fatalf("Select(evt_3) failed")
	}
	if in.Select("evt_404") || in.Index() != 2 {
		t.Fatalf("unknown id changed the selection")
	}
	in.Next()
	if in.Index() != 0 {
		t.Fatalf("Next should wrap to 0, got %d", in.Index())
	}
	in.Prev()
	if in.Index() != 2 {
		t.Fatalf("Prev should wrap to 2, got %d", in.Index())
	}
}

func TestRenderEveryEvent(t *testing.T) {
	in := New(catalog.Default().Events())
	for _, ev := range in.Events() {
		in.Select(ev.ID)
		out, err := in.Render()
		if err != nil {
			t.Fatalf("%s: Render: %v", ev.ID, err)
		}
		head, body, found := strings.Cut(out, "\n\n")
		if !found {
			t.Fatalf("%s: missing blank line separator", ev.ID)
		}
		lines := strings.Split(head, "\n")
		if len(lines) != len(ev.Headers) {
			t.Fatalf("%s: expected %d header lines, got %d", ev.ID, len(ev.Headers), len(lines))
		}
		if !strings.HasPrefix(lines[0], "POST /webhooks/") {
			t.Fatalf("%s: first line %q is not the request line", ev.ID, lines[0])
		}
		for j, h := range ev.Headers[1:] {
			if want := h.Name + ": " + h.Value; lines[j+1] != want {
				t.Fatalf("%s: header %d = %q, want %q", ev.ID, j+1, lines[j+1], want)
			}
		}

		var rendered, original any
		if err := json.Unmarshal([]byte(body), &rendered); err != nil {
			t.Fatalf("%s: rendered body is not JSON: %v", ev.ID, err)
		}
		_ = json.Unmarshal(ev.Body, &original)
		if !reflect.DeepEqual(rendered, original) {
			t.Fatalf("%s: body does not round-trip", ev.ID)
		}
		if !strings.HasPrefix(body, "{\n  \"") {
			t.Fatalf("%s: body not indented with two spaces: %q", ev.ID, body[:10])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := New(nil).Render()
	if err != nil || out != "" {
		t.Fatalf("expected empty render, got %q %v", out, err)
	}
}
