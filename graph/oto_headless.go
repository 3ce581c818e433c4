// SPDX-License-Identifier: EPL-2.0

//go:build headless

package graph

import "time"

// Oto stands in for the system output in headless builds. It plays
// nothing and keeps time like Silent.
type Oto struct {
	*Silent
}

func NewOto(sampleRate int, _ time.Duration) (*Oto, error) {
	return &Oto{Silent: NewSilent(sampleRate)}, nil
}
