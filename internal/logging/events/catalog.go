package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type CatalogTracer struct{}

type skipReason string

const (
	SkipUnreadable skipReason = "unreadable"
	SkipUnparsable skipReason = "unparsable"
	SkipNoGroup    skipReason = "no-desktop-entry-group"
	SkipNoExec     skipReason = "no-exec"
)

var Catalog = CatalogTracer{}

func (CatalogTracer) Source(kind, dir string) {
	logging.Trace("catalog.source", map[string]interface{}{"kind": kind, "dir": dir})
}

func (CatalogTracer) Skip(path string, reason skipReason, err error) {
	payload := map[string]interface{}{"path": path, "reason": string(reason)}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.skip", payload)
}

func (CatalogTracer) Override(label, previous, next string) {
	logging.Trace("catalog.override", map[string]interface{}{
		"label":    label,
		"previous": previous,
		"next":     next,
	})
}

func (CatalogTracer) Built(entries int) {
	logging.Trace("catalog.built", map[string]interface{}{"entries": entries})
}
