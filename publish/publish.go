// Package publish stores rendered pages.
package publish

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/helmet/pagefile"
)

var log = logrus.WithField("pkg", "publish")

// ContentType is sent with every stored page.
const ContentType = "text/html; charset=utf-8"

// Sink stores a rendered page under key.
type Sink interface {
	Put(ctx context.Context, key string, body []byte) error
}

// Key maps a page file path to the name it is published under:
// pages/index.yaml becomes index.html.
func Key(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// File renders the page file at path and stores it in sink. It returns the
// key the page was stored under.
func File(ctx context.Context, sink Sink, path string) (string, error) {
	out, err := pagefile.Render(path)
	if err != nil {
		return "", err
	}
	key := Key(path)
	if err := sink.Put(ctx, key, []byte(out)); err != nil {
		return "", errors.Wrapf(err, "failed to publish %s", path)
	}
	log.WithFields(logrus.Fields{"path": path, "key": key, "bytes": len(out)}).Info("page published")
	return key, nil
}
