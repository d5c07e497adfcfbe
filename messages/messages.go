// Package messages turns state and error identities into user-facing text.
// Nothing outside this package decides wording.
package messages

import (
	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/locator"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Supported lists the languages with a bundled catalogue.
var Supported = []language.Tag{language.English, language.German}

// Printer renders text in one language, falling back to English.
type Printer struct {
	loc *i18n.Localizer
}

// NewBundle returns a bundle holding every bundled catalogue.
func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.German, german...); err != nil {
		log.Warn().Err(err).Str("lang", language.German.String()).Msg("Failed to load message catalogue")
	}
	return bundle
}

// New returns a Printer for lang, e.g. "en" or "de-AT".
func New(lang string) *Printer {
	return &Printer{loc: i18n.NewLocalizer(NewBundle(), lang, language.English.String())}
}

func (p *Printer) text(msg *i18n.Message, data map[string]any) string {
	s, err := p.loc.Localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if err != nil {
		log.Debug().Err(err).Str("id", msg.ID).Msg("Localization fell back to the source text")
		if s == "" {
			return msg.Other
		}
	}
	return s
}

// SelectButton is the picker label for the current state.
func (p *Printer) SelectButton(s app.State) string {
	if s.Root == "" {
		return p.text(msgSelect, nil)
	}
	return p.text(msgReselect, nil)
}

// Location describes the selected folder.
func (p *Printer) Location(s app.State) string {
	if s.Root == "" {
		return p.text(msgNoLocation, nil)
	}
	return p.text(msgLocation, map[string]any{"Path": s.Root})
}

// Reason explains a locator error without any prefix.
func (p *Printer) Reason(e *locator.Error) string {
	switch e.Kind {
	case locator.NoSteamApps:
		return p.text(msgNoSteamApps, nil)
	case locator.NoSourcemods:
		return p.text(msgNoSourcemods, nil)
	case locator.NotInstalled:
		return p.text(msgNotInstalled, nil)
	case locator.NoVersionFile:
		return p.text(msgNoVersion, nil)
	case locator.VersionFileUnparseable:
		return p.text(msgUnparseable, nil)
	default:
		errText := ""
		if e.Err != nil {
			errText = e.Err.Error()
		}
		return p.text(msgInternal, map[string]any{"Path": e.Path, "Err": errText})
	}
}

// LocationError is Reason with an error prefix for everything but the
// benign not-installed case.
func (p *Printer) LocationError(e *locator.Error) string {
	reason := p.Reason(e)
	if e.Kind.Benign() {
		return reason
	}
	return p.text(msgErrorLine, map[string]any{"Message": reason})
}

// Installed names the installed version.
func (p *Printer) Installed(inst *locator.GameInstallation) string {
	return p.text(msgInstalled, map[string]any{"Name": inst.Version.Name})
}

// Manifest describes the manifest status. Failed never reads like Pending.
func (p *Printer) Manifest(ms app.ManifestStatus) string {
	switch ms.Status {
	case app.Ready:
		return p.text(msgLatest, map[string]any{"Latest": ms.Latest})
	case app.Failed:
		errText := ""
		if ms.Err != nil {
			errText = ms.Err.Error()
		}
		return p.text(msgManifestFailed, map[string]any{"Err": errText})
	default:
		return p.text(msgLoading, nil)
	}
}

// Comparison renders the verdict; Unknown renders as empty.
func (p *Printer) Comparison(c app.Comparison) string {
	switch c {
	case app.UpToDate:
		return p.text(msgUpToDate, nil)
	case app.UpdateAvailable:
		return p.text(msgUpdateAvailable, nil)
	case app.AheadOfManifest:
		return p.text(msgAhead, nil)
	default:
		return ""
	}
}

// Lines is the full textual rendering of s, top to bottom. The manifest
// line only appears when an installation is present.
func (p *Printer) Lines(s app.State) []string {
	lines := []string{p.Location(s)}
	switch {
	case s.Installation != nil:
		lines = append(lines, p.Installed(s.Installation), p.Manifest(s.Manifest))
		if c := p.Comparison(s.Compare()); c != "" {
			lines = append(lines, c)
		}
	case s.LocationErr != nil:
		lines = append(lines, p.LocationError(s.LocationErr))
	}
	return lines
}
