package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"cclex/internal/diag"
	"cclex/internal/lexer"
	"cclex/internal/progress"
	"cclex/internal/source"
	"cclex/internal/token"
	"cclex/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь относительно корня обхода
	FileID source.FileID // ID файла в FileSet (виртуальный пустой файл при ошибке загрузки)
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error // *source.IOError или *lexer.Error
}

// Failed reports whether the file could not be loaded or lexed to EOF.
func (r TokenizeDirResult) Failed() bool { return r.Err != nil }

// ListSources возвращает отсортированный список файлов с расширениями exts.
// Сравнение расширений регистронезависимое.
func ListSources(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	// детерминированный порядок
	slices.Sort(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Файлы загружаются последовательно, лексеры работают в пуле из opts.Jobs горутин.
// Ошибка загрузки одного файла не прерывает обход: она попадает в его Bag.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSources(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	display := make([]string, len(files))
	for i, path := range files {
		display[i] = path
		if rel, relErr := source.RelativePath(path, dir); relErr == nil {
			display[i] = rel
		}
	}
	progress.EmitQueued(opts.Progress, display)

	ctx, runSpan := trace.StartSpan(ctx, trace.ScopePass, "tokenize_dir")
	defer runSpan.WithExtra("files", strconv.Itoa(len(files))).End(dir)

	// FileSet не потокобезопасен на запись: всё грузим до запуска пула
	load := startPhase(opts.Observer, PhaseLoad)
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		progress.Emit(opts.Progress, progress.Event{File: display[i], Stage: progress.StageLoad, Status: progress.StatusWorking})
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// пустой виртуальный файл, чтобы span диагностики указывал на нужный путь
			id = fileSet.AddVirtual(path, nil)
			loadErrors[i] = loadErr
			progress.Emit(opts.Progress, progress.Event{File: display[i], Stage: progress.StageLoad, Status: progress.StatusError, Err: loadErr})
		}
		fileIDs[i] = id
	}
	load.end(strconv.Itoa(len(files)) + " files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))
	unitOpts := opts
	unitOpts.Observer = nil

	lex := startPhase(opts.Observer, PhaseLex)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileIDs[i]}, "failed to load file: "+loadErr.Error()))
				results[i] = TokenizeDirResult{Path: display[i], FileID: fileIDs[i], Bag: bag, Err: loadErr}
				return nil
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			lx := lexer.New(fileSet.Get(fileIDs[i]), unitOpts.lexerOptions(bag))
			res := lexUnit(gctx, fileSet, lx, bag, display[i], unitOpts)
			results[i] = TokenizeDirResult{
				Path:   display[i],
				FileID: fileIDs[i],
				Tokens: res.Tokens,
				Bag:    res.Bag,
				Err:    res.Err,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lex.end("cancelled")
		return fileSet, nil, err
	}
	lex.end(strconv.Itoa(len(files)) + " files")

	return fileSet, results, nil
}

// MergeBags собирает диагностики всех файлов в один пакет, не больше limit.
func MergeBags(results []TokenizeDirResult, limit int) *diag.Bag {
	out := diag.NewBag(limit)
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			if !out.Add(d) {
				return out
			}
		}
	}
	return out
}
