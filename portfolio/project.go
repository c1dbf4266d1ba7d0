package portfolio

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/they4kman/lightsout/util/collections"
)

// AllCategories is the pseudo-category matching every project
const AllCategories = "All"

// Project is one record of the data file. A project decoded from JSON encodes
// back to exactly the record it was read from, fields unknown to this struct
// included.
type Project struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Links       map[string]string `json:"links"`
	Repo        string            `json:"repo,omitempty"`
	Screenshots []string          `json:"screenshots,omitempty"`
	Image       string            `json:"image,omitempty"`
	Stars       int               `json:"stars,omitempty"`
	Forks       int               `json:"forks,omitempty"`

	raw json.RawMessage
}

// projectFields has Project's fields without its methods
type projectFields Project

func (project *Project) UnmarshalJSON(data []byte) error {
	var fields projectFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*project = Project(fields)
	project.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (project Project) MarshalJSON() ([]byte, error) {
	if project.raw != nil {
		return project.raw, nil
	}

	// The site iterates tags and reads links unconditionally
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if project.Links == nil {
		project.Links = map[string]string{}
	}
	return json.Marshal(projectFields(project))
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// FilterByCategory keeps projects whose category matches, ignoring case. An
// empty category or "All" keeps everything.
func FilterByCategory(projects []Project, category string) []Project {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return projects
	}

	filtered := []Project{}
	for _, project := range projects {
		if strings.EqualFold(project.Category, category) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// Categories returns "All" followed by every distinct category, sorted
func Categories(projects []Project) []string {
	categories := make(collections.Set[string])
	for _, project := range projects {
		if project.Category != "" {
			categories.Add(project.Category)
		}
	}
	return append([]string{AllCategories}, collections.Sorted(categories)...)
}

// Search keeps projects whose title, description or one of whose tags
// contains term, ignoring case.
func Search(projects []Project, term string) []Project {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return projects
	}

	filtered := []Project{}
	for _, project := range projects {
		if project.matches(term) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func (project Project) matches(term string) bool {
	if strings.Contains(strings.ToLower(project.Title), term) ||
		strings.Contains(strings.ToLower(project.Description), term) {
		return true
	}
	for _, tag := range project.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func FilterByTag(projects []Project, tag string) []Project {
	if tag == "" {
		return projects
	}

	filtered := []Project{}
	for _, project := range projects {
		if project.HasTag(tag) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func (project Project) HasTag(tag string) bool {
	for _, t := range project.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagCloud counts how many projects carry each tag, most used first and ties
// by name.
func TagCloud(projects []Project) []TagCount {
	counts := map[string]int{}
	for _, project := range projects {
		seen := make(collections.Set[string])
		for _, tag := range project.Tags {
			if !seen.Contains(tag) {
				seen.Add(tag)
				counts[tag]++
			}
		}
	}

	cloud := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		cloud = append(cloud, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(cloud, func(i, j int) bool {
		if cloud[i].Count != cloud[j].Count {
			return cloud[i].Count > cloud[j].Count
		}
		return cloud[i].Tag < cloud[j].Tag
	})
	return cloud
}
