package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/celconex/master-build/buildconfig"
	"github.com/dustin/go-humanize"
)

// LocalArtifactPattern matches the platform packages a local build leaves in the project root.
const LocalArtifactPattern = "*.{aab,ipa}"

const fileNameLayout = "20060102_150405"

const reportTemplate = `{{- $title := printf "%s - Build Report" .AppName -}}
{{ $title }}
{{ repeat (runeCount $title) "=" }}
Fecha: {{ .Date }}
Tipo de build: {{ .BuildType }}
Plataforma: {{ .Platform }}
Estado: EXITOSO

Configuración:
- Verificaciones: {{ ternary "SALTADAS" "EJECUTADAS" .SkipChecks }}
- Limpieza: {{ ternary "FORZADA" "NORMAL" .ForceClean }}
- Auto-submit: {{ ternary "HABILITADO" "DESHABILITADO" .AutoSubmit }}

Archivos generados:
{{- range .Artifacts }}
{{ .Path }}  {{ .Size }}  {{ .ModTime }}
{{- else }}
Ningún archivo local (build remoto)
{{- end }}

Duración del build: {{ .Seconds }}s
`

var tmpl = template.Must(template.New("report").Funcs(funcMap()).Parse(reportTemplate))

func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["runeCount"] = utf8.RuneCountInString
	return funcs
}

// Artifact is a build output listed in the report.
type Artifact struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Report ...
type Report struct {
	AppName   string
	Created   time.Time
	Options   buildconfig.Options
	Artifacts []Artifact
	Duration  time.Duration
}

type artifactView struct {
	Path    string
	Size    string
	ModTime string
}

type view struct {
	AppName    string
	Date       string
	BuildType  string
	Platform   string
	SkipChecks bool
	ForceClean bool
	AutoSubmit bool
	Artifacts  []artifactView
	Seconds    int64
}

// Render writes the report text.
func Render(w io.Writer, r Report) error {
	v := view{
		AppName:    r.AppName,
		Date:       r.Created.Format(time.UnixDate),
		BuildType:  string(r.Options.BuildType),
		Platform:   string(r.Options.Platform),
		SkipChecks: r.Options.SkipChecks,
		ForceClean: r.Options.ForceClean,
		AutoSubmit: r.Options.AutoSubmit,
		Seconds:    int64(r.Duration / time.Second),
	}
	for _, a := range r.Artifacts {
		v.Artifacts = append(v.Artifacts, artifactView{
			Path:    a.Path,
			Size:    humanize.Bytes(uint64(a.Size)),
			ModTime: a.ModTime.Format("Jan _2 15:04"),
		})
	}

	return tmpl.Execute(w, v)
}

// FileName returns the dated report file name, eg. build-report-20261015_093000.txt.
func FileName(created time.Time) string {
	return fmt.Sprintf("build-report-%s.txt", created.Format(fileNameLayout))
}

// Write renders the report into dir and returns the file path.
func Write(dir string, r Report) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	pth := filepath.Join(dir, FileName(r.Created))
	if err := os.WriteFile(pth, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return pth, nil
}

// FindLocalArtifacts lists the app bundles and iOS archives in dir, sorted by name.
func FindLocalArtifacts(dir string) ([]Artifact, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, LocalArtifactPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search artifacts: %w", err)
	}
	sort.Strings(matches)

	var artifacts []Artifact
	for _, match := range matches {
		artifact, err := Stat(filepath.Join(dir, match))
		if err != nil {
			return nil, err
		}
		artifact.Path = match
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// Stat describes the file at pth as an Artifact.
func Stat(pth string) (Artifact, error) {
	info, err := os.Stat(pth)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to stat artifact: %w", err)
	}
	return Artifact{Path: pth, Size: info.Size(), ModTime: info.ModTime()}, nil
}
