package game

import "time"

type AnnotationType int

const (
	AnnotatePress AnnotationType = iota
	AnnotateHint
)

// Annotation marks a cell a director pressed or suggested, for renderers to
// highlight for a while
type Annotation struct {
	Type AnnotationType
	Cell *Cell

	firstShown time.Time
	frame      uint
}

func (annotation Annotation) Age(now time.Time) time.Duration {
	return now.Sub(annotation.firstShown)
}

func (board *Board) AddAnnotation(annotation Annotation) {
	annotation.firstShown = time.Now()
	annotation.frame = board.directorFrame
	board.directorAnnotations.PushBack(annotation)
}

// IsLatest reports whether the annotation came from the director's most
// recent step. Those stay visible until the next step.
func (board *Board) IsLatest(annotation Annotation) bool {
	return annotation.frame == board.directorFrame
}

// Annotations drops annotations older than maxAge, except those from the
// latest step, and returns the rest oldest first.
func (board *Board) Annotations(now time.Time, maxAge time.Duration) []Annotation {
	for board.directorAnnotations.Len() > 0 {
		oldest := board.directorAnnotations.Front().(Annotation)
		if oldest.Age(now) <= maxAge || board.IsLatest(oldest) {
			break
		}
		board.directorAnnotations.PopFront()
	}

	annotations := make([]Annotation, 0, board.directorAnnotations.Len())
	for i := 0; i < board.directorAnnotations.Len(); i++ {
		annotations = append(annotations, board.directorAnnotations.At(i).(Annotation))
	}
	return annotations
}

// LatestAnnotation returns the most recently added annotation still queued
func (board *Board) LatestAnnotation() (Annotation, bool) {
	if board.directorAnnotations.Len() == 0 {
		return Annotation{}, false
	}
	return board.directorAnnotations.Back().(Annotation), true
}
