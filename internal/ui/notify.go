/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ProductTag prefixes every user-visible notice.
const ProductTag = "LectorGPT: "

// ColorNotifier writes product-tagged notices to a stream, colorized when
// the stream supports it.
type ColorNotifier struct {
	out io.Writer

	warnColor *color.Color
	errColor  *color.Color
}

func NewColorNotifier() *ColorNotifier {
	return &ColorNotifier{
		out:       os.Stderr,
		warnColor: color.New(color.FgYellow),
		errColor:  color.New(color.FgRed),
	}
}

// NewWriterNotifier returns a notifier targeting an arbitrary stream. Used
// by tests to capture notices.
func NewWriterNotifier(out io.Writer) *ColorNotifier {
	notifier := NewColorNotifier()
	notifier.out = out
	return notifier
}

func (n *ColorNotifier) Infof(format string, args ...any) {
	fmt.Fprintf(n.out, ProductTag+format+"\n", args...)
}

func (n *ColorNotifier) Warnf(format string, args ...any) {
	n.warnColor.Fprintf(n.out, ProductTag+format+"\n", args...)
}

func (n *ColorNotifier) Errorf(format string, args ...any) {
	n.errColor.Fprintf(n.out, ProductTag+format+"\n", args...)
}
