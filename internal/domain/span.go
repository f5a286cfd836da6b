package domain

import (
	"context"
	"encoding/json"
	"time"
)

type Span struct {
	Name       string `json:"name"`
	startTs    time.Time
	subProfile *Profile

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
}

type profileContextKey string

const ContextProfileKey profileContextKey = "performanceProfile"

// GetProfile returns the profile attached to ctx. When there is none, a
// detached profile is returned so callers can record spans unconditionally.
func GetProfile(ctx context.Context) (profile *Profile, endNewProfile func()) {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok || profile == nil {
		return NewProfile()
	}
	return profile, profile.End
}

func WithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, profile)
}

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
	if s.subProfile != nil {
		s.SubSpans = s.subProfile.Spans
	}
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

func NewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	return newSpan, newSpan.End
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan, endSpan = NewSpan(name)
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, endSpan
}

func (s *Span) NewSubProfile() (*Profile, func()) {
	if s.subProfile != nil {
		panic("attempting to override existing subprofile")
	}
	newProfile, end := NewProfile()
	s.subProfile = newProfile
	return newProfile, end
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
