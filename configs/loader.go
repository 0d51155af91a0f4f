package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type source struct {
	name string
	read func() ([]byte, error)
}

// NewLoader loads CUE files in priority order, each validated against schemaSrc.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	sources := make([]source, 0, len(filePaths))
	for _, filePath := range filePaths {
		sources = append(sources, source{
			name: filePath,
			read: func() ([]byte, error) {
				return os.ReadFile(filePath)
			},
		})
	}
	return newLoader(sources, schemaSrc)
}

// NewSourceLoader is NewLoader over in-memory CUE sources.
func NewSourceLoader(srcs []string, schemaSrc string) Loader {
	sources := make([]source, 0, len(srcs))
	for _, src := range srcs {
		sources = append(sources, source{
			name: "<source>",
			read: func() ([]byte, error) {
				return []byte(src), nil
			},
		})
	}
	return newLoader(sources, schemaSrc)
}

func newLoader(sources []source, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			var schema cue.Value
			if schemaSrc != "" {
				ctx := cuecontext.New()
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, src := range sources {
				content, err := src.read()
				if err != nil {
					return nil, err
				}

				ctx := cuecontext.New()
				value := ctx.CompileBytes(
					content,
					cue.Filename(src.name),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  src.name,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil && value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.getRoots()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if err := value.Err(); err == nil && value.Exists() {
			if err := value.Decode(target); err != nil {
				return err
			}
			return nil
		}
	}

	return ErrValueNotFound
}
