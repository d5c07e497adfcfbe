package messages

import "github.com/nicksnyder/go-i18n/v2/i18n"

// English is the source catalogue; every other language is optional.
var (
	msgNoLocation = &i18n.Message{ID: "NoLocation", Other: "No Steam location selected"}
	msgLocation   = &i18n.Message{ID: "Location", Other: "Location selected: {{.Path}}"}
	msgSelect     = &i18n.Message{ID: "SelectLocation", Other: "Select a location..."}
	msgReselect   = &i18n.Message{ID: "SelectDifferentLocation", Other: "Select a different location..."}
	msgErrorLine  = &i18n.Message{ID: "ErrorLine", Other: "Error: {{.Message}}"}
	msgInstalled  = &i18n.Message{ID: "Installed", Other: "Installed version: {{.Name}}"}

	msgNoSteamApps  = &i18n.Message{ID: "NoSteamApps", Other: "No steamapps in selected location"}
	msgNoSourcemods = &i18n.Message{ID: "NoSourcemods", Other: "There's no \"sourcemods\" folder in that Steam library. Is it your main Steam library?"}
	msgNotInstalled = &i18n.Message{ID: "NotInstalled", Other: "This isn't really an error, the game is just not installed."}
	msgNoVersion    = &i18n.Message{ID: "NoVersionFile", Other: "There's no version file in the game location."}
	msgUnparseable  = &i18n.Message{ID: "VersionFileUnparseable", Other: "There's a version file, but we couldn't parse it. Is the format changed?"}
	msgInternal     = &i18n.Message{ID: "Internal", Other: "Couldn't read {{.Path}}: {{.Err}}"}

	msgLoading        = &i18n.Message{ID: "ManifestLoading", Other: "Latest version: Loading..."}
	msgLatest         = &i18n.Message{ID: "ManifestLatest", Other: "Latest version: {{.Latest}}"}
	msgManifestFailed = &i18n.Message{ID: "ManifestFailed", Other: "Couldn't fetch the list of published versions: {{.Err}}"}

	msgUpToDate        = &i18n.Message{ID: "UpToDate", Other: "You're up to date."}
	msgUpdateAvailable = &i18n.Message{ID: "UpdateAvailable", Other: "An update is available."}
	msgAhead           = &i18n.Message{ID: "AheadOfManifest", Other: "Your installed version is newer than the latest published one."}
)

var german = []*i18n.Message{
	{ID: "NoLocation", Other: "Kein Steam-Ordner ausgewählt"},
	{ID: "Location", Other: "Ausgewählter Ordner: {{.Path}}"},
	{ID: "SelectLocation", Other: "Ordner auswählen..."},
	{ID: "SelectDifferentLocation", Other: "Anderen Ordner auswählen..."},
	{ID: "ErrorLine", Other: "Fehler: {{.Message}}"},
	{ID: "Installed", Other: "Installierte Version: {{.Name}}"},
	{ID: "NoSteamApps", Other: "Im ausgewählten Ordner gibt es kein steamapps"},
	{ID: "NoSourcemods", Other: "Diese Steam-Bibliothek hat keinen \"sourcemods\"-Ordner. Ist es deine Hauptbibliothek?"},
	{ID: "NotInstalled", Other: "Kein echter Fehler, das Spiel ist nur nicht installiert."},
	{ID: "NoVersionFile", Other: "Im Spielordner gibt es keine Versionsdatei."},
	{ID: "VersionFileUnparseable", Other: "Die Versionsdatei ist vorhanden, konnte aber nicht gelesen werden. Hat sich das Format geändert?"},
	{ID: "Internal", Other: "{{.Path}} konnte nicht gelesen werden: {{.Err}}"},
	{ID: "ManifestLoading", Other: "Neueste Version: wird geladen..."},
	{ID: "ManifestLatest", Other: "Neueste Version: {{.Latest}}"},
	{ID: "ManifestFailed", Other: "Die Liste der veröffentlichten Versionen konnte nicht geladen werden: {{.Err}}"},
	{ID: "UpToDate", Other: "Du bist auf dem neuesten Stand."},
	{ID: "UpdateAvailable", Other: "Ein Update ist verfügbar."},
	{ID: "AheadOfManifest", Other: "Die installierte Version ist neuer als die neueste veröffentlichte."},
}
