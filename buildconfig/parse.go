package buildconfig

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

var (
	// ErrHelp is returned by Parse when -h/--help was given.
	ErrHelp = errors.New("help requested")
	// ErrUsage is returned by Parse for unknown flags, missing flag values and positional arguments.
	ErrUsage = errors.New("opción desconocida")
)

type cli struct {
	Type       string `short:"t" default:"production" placeholder:"TYPE"`
	Platform   string `short:"p" default:"android" placeholder:"PLATFORM"`
	SkipChecks bool   `short:"s" name:"skip-checks"`
	Clean      bool   `short:"c"`
	AutoSubmit bool   `short:"a" name:"auto-submit"`
	Quick      bool   `short:"q"`
	Help       bool   `short:"h"`
}

// Parse reads the command line into Flags. Enumerated values are not checked here, see Validate.
func Parse(program string, args []string) (Flags, error) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name(program),
		kong.NoDefaultHelp(),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return Flags{}, err
	}

	if _, err := parser.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if c.Help {
		return Flags{}, ErrHelp
	}

	return Flags{
		Type:       c.Type,
		Platform:   c.Platform,
		SkipChecks: c.SkipChecks,
		Clean:      c.Clean,
		AutoSubmit: c.AutoSubmit,
		Quick:      c.Quick,
	}, nil
}

// Usage writes the help text.
func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Uso: %s [OPTIONS]\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Opciones:")
	fmt.Fprintln(w, "  -t, --type TYPE          Tipo de build (development|preview|production) [default: production]")
	fmt.Fprintln(w, "  -p, --platform PLATFORM  Plataforma (android|ios|all) [default: android]")
	fmt.Fprintln(w, "  -s, --skip-checks        Saltar verificaciones pre-build")
	fmt.Fprintln(w, "  -c, --clean              Forzar limpieza profunda antes del build")
	fmt.Fprintln(w, "  -a, --auto-submit        Subir automáticamente a las tiendas")
	fmt.Fprintln(w, "  -q, --quick              Build rápido (skip-checks + no-clean)")
	fmt.Fprintln(w, "  -h, --help               Mostrar esta ayuda")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ejemplos:")
	fmt.Fprintf(w, "  %s                       # Build de producción para Android\n", program)
	fmt.Fprintf(w, "  %s -t preview -p all     # Build preview para Android e iOS\n", program)
	fmt.Fprintf(w, "  %s -q                    # Build rápido\n", program)
	fmt.Fprintf(w, "  %s -c -a                 # Build completo con limpieza y submit\n", program)
}
