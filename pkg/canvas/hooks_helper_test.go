package canvas

import "fmt"

type hookRecorder struct {
	events []string
}

func (h *hookRecorder) OnColorChanged(color string, delivered bool) {
	h.events = append(h.events, fmt.Sprintf("color %s %v", color, delivered))
}

func (h *hookRecorder) OnPercentageChanged(p float64) {
	h.events = append(h.events, fmt.Sprintf("percentage %g", p))
}

func (h *hookRecorder) OnLineWidthChanged(w float64, delivered bool) {
	h.events = append(h.events, fmt.Sprintf("width %g %v", w, delivered))
}

func (h *hookRecorder) OnWritableRegistered(replaced bool) {
	h.events = append(h.events, fmt.Sprintf("writable %v", replaced))
}
