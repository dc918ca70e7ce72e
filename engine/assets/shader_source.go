package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownShaderType  = errors.New("unknown shader type")
	ErrMissingShaderStage = errors.New("missing shader stage")
)

const (
	VertexFile   = "vertex.glsl"
	FragmentFile = "fragment.glsl"

	typeMarker = "#type"
)

// ShaderSource holds the GLSL text of both stages of a program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// LoadShaderSource resolves a shader locator. A directory must contain
// vertex.glsl and fragment.glsl; any other path is read as a single file
// whose stages are introduced by "#type vertex" and "#type fragment" lines.
func LoadShaderSource(locator string) (ShaderSource, error) {
	info, err := os.Stat(locator)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", locator, err)
	}
	if info.IsDir() {
		return loadShaderDir(locator)
	}

	f, err := os.Open(locator)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", locator, err)
	}
	defer f.Close()

	src, err := ParseShaderSource(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", locator, err)
	}
	return src, nil
}

func loadShaderDir(dir string) (ShaderSource, error) {
	read := func(name string) (string, error) {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("load shader %q: %w: no %s", dir, ErrMissingShaderStage, name)
			}
			return "", fmt.Errorf("load shader %q: %w", dir, err)
		}
		return string(b), nil
	}

	vs, err := read(VertexFile)
	if err != nil {
		return ShaderSource{}, err
	}
	fs, err := read(FragmentFile)
	if err != nil {
		return ShaderSource{}, err
	}
	return ShaderSource{Vertex: vs, Fragment: fs}, nil
}

// ParseShaderSource splits a single-file shader on its #type markers.
// Lines before the first marker are ignored.
func ParseShaderSource(r io.Reader) (ShaderSource, error) {
	var vertex, fragment strings.Builder
	var dst *strings.Builder
	var seenVertex, seenFragment bool

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if strings.HasPrefix(text, typeMarker) {
			switch kind := strings.TrimSpace(strings.TrimPrefix(text, typeMarker)); kind {
			case "vertex":
				dst, seenVertex = &vertex, true
			case "fragment":
				dst, seenFragment = &fragment, true
			default:
				return ShaderSource{}, fmt.Errorf("line %d: %w %q", line, ErrUnknownShaderType, kind)
			}
			continue
		}
		if dst != nil {
			dst.WriteString(text)
			dst.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, err
	}

	switch {
	case !seenVertex:
		return ShaderSource{}, fmt.Errorf("%w: vertex", ErrMissingShaderStage)
	case !seenFragment:
		return ShaderSource{}, fmt.Errorf("%w: fragment", ErrMissingShaderStage)
	}
	return ShaderSource{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}
