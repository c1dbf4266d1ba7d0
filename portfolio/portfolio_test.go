package portfolio

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var sample = []Project{
	{ID: 1, Title: "Lights Out", Description: "Puzzle game in the browser", Category: "Games", Tags: []string{"JavaScript", "Canvas"}},
	{ID: 2, Title: "Portfolio API", Description: "Serves this site", Category: "Web", Tags: []string{"Go", "Docker"}},
	{ID: 3, Title: "Sweeper", Description: "Minesweeper with a solver", Category: "games", Tags: []string{"Go"}},
	{ID: 4, Title: "Dotfiles", Description: "Shell setup", Category: "Tools"},
}

func ids(projects []Project) []int {
	out := []int{}
	for _, project := range projects {
		out = append(out, project.ID)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	cases := []struct {
		category string
		want     []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"All", []int{1, 2, 3, 4}},
		{"all", []int{1, 2, 3, 4}},
		{"Games", []int{1, 3}},
		{"WEB", []int{2}},
		{"Music", []int{}},
	}

	for _, tc := range cases {
		if got := ids(FilterByCategory(sample, tc.category)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FilterByCategory(%q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestCategories(t *testing.T) {
	want := []string{"All", "Games", "Tools", "Web", "games"}
	if got := Categories(sample); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}

	if got := Categories(nil); !reflect.DeepEqual(got, []string{"All"}) {
		t.Fatalf("Categories(nil) = %v", got)
	}
}

func TestSearch(t *testing.T) {
	cases := []struct {
		term string
		want []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"light", []int{1}},
		{"SOLVER", []int{3}},
		{"go", []int{2, 3}},
		{"docker", []int{2}},
		{"nothing here", []int{}},
	}

	for _, tc := range cases {
		if got := ids(Search(sample, tc.term)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Search(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestFilterByTag(t *testing.T) {
	if got := ids(FilterByTag(sample, "Go")); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("FilterByTag(Go) = %v", got)
	}
	if got := ids(FilterByTag(sample, "go")); !reflect.DeepEqual(got, []int{}) {
		t.Fatalf("tags match exactly, got %v", got)
	}
}

func TestTagCloud(t *testing.T) {
	want := []TagCount{
		{"Go", 2},
		{"Canvas", 1},
		{"Docker", 1},
		{"JavaScript", 1},
	}
	if got := TagCloud(sample); !reflect.DeepEqual(got, want) {
		t.Fatalf("TagCloud = %v, want %v", got, want)
	}

	dup := []Project{{Tags: []string{"Go", "Go"}}}
	if got := TagCloud(dup); got[0].Count != 1 {
		t.Fatalf("repeated tag counted %d times for one project", got[0].Count)
	}
}

func TestStoreProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	write := func(contents string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store := NewStore(path)
	if _, err := store.Projects(context.Background()); err == nil {
		t.Fatal("missing file should fail")
	}

	write(`[{"id": 1, "title": "One", "category": "Web", "tags": ["Go"], "links": {"github": "https://example.com"}}]`)
	projects, err := store.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "One" || projects[0].Links["github"] != "https://example.com" {
		t.Fatalf("unexpected projects %+v", projects)
	}

	// Re-read on every call
	write(`[{"id": 1}, {"id": 2}]`)
	projects, err = store.Projects(context.Background())
	if err != nil || len(projects) != 2 {
		t.Fatalf("Projects after edit = %v, %v", projects, err)
	}

	write(`null`)
	projects, err = store.Projects(context.Background())
	if err != nil || projects == nil || len(projects) != 0 {
		t.Fatalf("null file = %v, %v; want empty list", projects, err)
	}

	write(`{"not": "a list"}`)
	if _, err := store.Projects(context.Background()); err == nil {
		t.Fatal("malformed file should fail")
	}
}

func TestStoreProjectsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStore("unused.json").Projects(ctx); err == nil {
		t.Fatal("cancelled context should fail")
	}
}

func TestProjectJSON(t *testing.T) {
	record := `{"id":7,"title":"T","tags":[],"links":{},"repo":"me/t","screenshots":["/a.png"],"extra":{"n":1}}`

	var project Project
	if err := json.Unmarshal([]byte(record), &project); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if project.ID != 7 || project.Repo != "me/t" || len(project.Screenshots) != 1 {
		t.Fatalf("typed fields not decoded: %+v", project)
	}

	out, err := json.Marshal(project)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != record {
		t.Fatalf("encoded %s, want the record as read: %s", out, record)
	}

	// Projects built in code still carry tags and links
	out, err = json.Marshal(Project{ID: 8, Title: "Built"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["tags"].([]any); !ok {
		t.Errorf("tags = %v, want an empty list", fields["tags"])
	}
	if _, ok := fields["links"].(map[string]any); !ok {
		t.Errorf("links = %v, want an empty object", fields["links"])
	}
}
