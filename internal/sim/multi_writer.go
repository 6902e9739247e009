package sim

// MultiWriter fan-outs trace events to multiple writers.
type MultiWriter struct {
	writers []EventWriter
}

// NewMultiWriter creates a new MultiWriter. Nil writers are skipped.
func NewMultiWriter(ws ...EventWriter) *MultiWriter {
	mw := &MultiWriter{}
	for _, w := range ws {
		if w != nil {
			mw.writers = append(mw.writers, w)
		}
	}
	return mw
}

// WriteEvent sends a trace event to all writers.
func (mw *MultiWriter) WriteEvent(ev TraceEvent) error {
	for _, w := range mw.writers {
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvents sends multiple events to all writers, using batch if supported.
func (mw *MultiWriter) WriteEvents(evs []TraceEvent) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchEventWriter); ok {
			if err := bw.WriteEvents(evs); err != nil {
				return err
			}
			continue
		}
		for _, ev := range evs {
			if err := w.WriteEvent(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
