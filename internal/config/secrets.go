// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"slices"
	"sync"
)

// Built-in fallbacks returned by getters of optional fields that were never
// set.
const (
	DefaultBotPrefix = "!"
	DefaultBotOnly   = false
	DefaultGitHubURL = "https://github.com/ClemsonCPSC-Discord/ClemBot"
)

// BotSecrets is the write-once store of bot configuration. Every exported
// field is a getter/setter pair (see [Field]); a field accepts exactly one
// successful Set for the lifetime of the store.
//
// A BotSecrets is filled by [Loader.LoadInto] early in startup and then only
// read. Dependents should prefer the immutable [Settings] snapshot.
type BotSecrets struct {
	ClientToken          *Field[string]
	ClientSecret         *Field[string]
	BotToken             *Field[string]
	BotPrefix            *Field[string]
	BotOnly              *Field[bool]
	StartupLogChannelIDs *Field[[]int64]
	ErrorLogChannelIDs   *Field[[]int64]
	ReplURL              *Field[string]
	GitHubURL            *Field[string]
	APIURL               *Field[string]
	APIKey               *Field[string]
	SiteURL              *Field[string]
	DocsURL              *Field[string]
	AllowBotInputIDs     *Field[[]int64]

	mu      sync.RWMutex
	origins map[string]Source
}

// NewBotSecrets returns an empty store.
func NewBotSecrets() *BotSecrets {
	return &BotSecrets{
		ClientToken:          NewField[string](KeyClientToken),
		ClientSecret:         NewField[string](KeyClientSecret),
		BotToken:             NewField[string](KeyBotToken),
		BotPrefix:            NewFieldWithFallback(KeyBotPrefix, DefaultBotPrefix),
		BotOnly:              NewFieldWithFallback(KeyBotOnly, DefaultBotOnly),
		StartupLogChannelIDs: NewListField[int64](KeyStartupLogChannelIDs),
		ErrorLogChannelIDs:   NewListField[int64](KeyErrorLogChannelIDs),
		ReplURL:              NewField[string](KeyReplURL),
		GitHubURL:            NewFieldWithFallback(KeyGitHubURL, DefaultGitHubURL),
		APIURL:               NewField[string](KeyAPIURL),
		APIKey:               NewField[string](KeyAPIKey),
		SiteURL:              NewField[string](KeySiteURL),
		DocsURL:              NewField[string](KeyDocsURL),
		AllowBotInputIDs:     NewListField[int64](KeyAllowBotInputIDs),
		origins:              make(map[string]Source),
	}
}

// Origin reports which source satisfied key during loading. Fields set
// directly through their setter have no origin.
func (s *BotSecrets) Origin(key string) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src, ok := s.origins[key]
	return src, ok
}

func (s *BotSecrets) recordOrigin(key string, src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.origins[key] = src
}

// Settings is an immutable snapshot of a fully loaded [BotSecrets]. It is a
// plain value: copying it is safe and its slices are not shared with the
// store.
type Settings struct {
	ClientToken          string
	ClientSecret         string
	BotToken             string
	BotPrefix            string
	BotOnly              bool
	StartupLogChannelIDs []int64
	ErrorLogChannelIDs   []int64
	ReplURL              string
	GitHubURL            string
	APIURL               string
	APIKey               string
	SiteURL              string
	DocsURL              string
	AllowBotInputIDs     []int64
}

// Settings reads every field of s. It fails with the joined
// ErrAccessBeforeInit errors of all unreadable fields.
func (s *BotSecrets) Settings() (Settings, error) {
	var (
		out  Settings
		errs []error
	)

	str := func(f *Field[string], dst *string) {
		v, err := f.Get()
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}
	ids := func(f *Field[[]int64], dst *[]int64) {
		v, err := f.Get()
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = slices.Clone(v)
	}

	str(s.ClientToken, &out.ClientToken)
	str(s.ClientSecret, &out.ClientSecret)
	str(s.BotToken, &out.BotToken)
	str(s.BotPrefix, &out.BotPrefix)
	botOnly, err := s.BotOnly.Get()
	if err != nil {
		errs = append(errs, err)
	}
	out.BotOnly = botOnly
	ids(s.StartupLogChannelIDs, &out.StartupLogChannelIDs)
	ids(s.ErrorLogChannelIDs, &out.ErrorLogChannelIDs)
	str(s.ReplURL, &out.ReplURL)
	str(s.GitHubURL, &out.GitHubURL)
	str(s.APIURL, &out.APIURL)
	str(s.APIKey, &out.APIKey)
	str(s.SiteURL, &out.SiteURL)
	str(s.DocsURL, &out.DocsURL)
	ids(s.AllowBotInputIDs, &out.AllowBotInputIDs)

	if len(errs) > 0 {
		return Settings{}, errors.Join(errs...)
	}
	return out, nil
}
