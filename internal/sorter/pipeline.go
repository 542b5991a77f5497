package sorter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"ordina/internal/application"
	"ordina/internal/domain"
	"ordina/internal/ports"
)

// Pipeline orchestrates the fallback chain per file and triggers the
// moves. Each file passes through the chain independently; one file's
// failure never affects another's processing.
type Pipeline struct {
	storage    ports.Storage
	classifier ports.Classifier    // nil disables the AI stages
	extractor  ports.TextExtractor // nil disables content extraction
	cache      ports.CacheStore    // nil disables the cache stages
	rules      map[string]domain.ProfileRule
	opts       Options
	log        *slog.Logger
}

// New builds a pipeline. storage is required; the other capabilities
// degrade gracefully when absent.
func New(storage ports.Storage, classifier ports.Classifier, extractor ports.TextExtractor,
	cache ports.CacheStore, rules map[string]domain.ProfileRule, opts Options, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		storage:    storage,
		classifier: classifier,
		extractor:  extractor,
		cache:      cache,
		rules:      rules,
		opts:       opts.withDefaults(),
		log:        log,
	}
}

// Route classifies and moves every file directly under parentID and
// returns the run report. Only an invalid parent ID or a failed listing
// aborts the run; per-file failures degrade to reason-coded skips, so
// the report is returned even when every file was skipped.
func (p *Pipeline) Route(ctx context.Context, parentID string) (*domain.SortReport, error) {
	if err := application.ValidateRequired("parentID", parentID); err != nil {
		return nil, err
	}

	started := time.Now()
	report := &domain.SortReport{
		RunID:    ulid.Make().String(),
		ParentID: parentID,
		DryRun:   p.opts.DryRun,
	}

	folders, err := p.storage.ListSubfolders(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subfolders of %s: %w", parentID, err)
	}
	files, err := p.storage.ListFiles(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files under %s: %w", parentID, err)
	}

	idx := NewIndex(folders, p.rules)
	if idx.Empty() {
		for _, f := range files {
			report.Skipped = append(report.Skipped, domain.SkipRecord{FileID: f.ID, Name: f.Name, Reason: domain.ReasonNoCandidates})
		}
		report.Sort()
		report.Duration = time.Since(started)
		return report, nil
	}

	gov := NewGovernor(p.opts.MaxAICalls, p.opts.MaxBytes, p.opts.TextMax, p.opts.AICallsPerMinute)
	rc := newRunCache(p.cache, p.log)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for _, f := range files {
		g.Go(func() error {
			moved, skipped := p.processFile(gctx, f, idx, gov, rc)
			mu.Lock()
			defer mu.Unlock()
			if moved != nil {
				report.Moved = append(report.Moved, *moved)
			} else {
				report.Skipped = append(report.Skipped, *skipped)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures become skips

	if err := rc.Flush(ctx); err != nil {
		p.log.Warn("cache write-back failed", "run_id", report.RunID, "error", err)
	}

	report.AICalls = gov.Calls()
	report.Duration = time.Since(started)
	report.Sort()
	p.log.Info("run finished",
		"run_id", report.RunID,
		"parent_id", parentID,
		"moved", len(report.Moved),
		"skipped", len(report.Skipped),
		"ai_calls", report.AICalls,
		"dry_run", p.opts.DryRun,
		"duration_ms", report.Duration.Milliseconds())
	return report, nil
}

// processFile runs the chain for one file and either moves it or records
// why it could not be routed. Exactly one of the results is non-nil.
func (p *Pipeline) processFile(ctx context.Context, f domain.FileItem, idx *Index, gov *Governor, rc *runCache) (*domain.MoveRecord, *domain.SkipRecord) {
	res, skip := p.classify(ctx, f, idx, gov, rc)
	if skip != nil {
		p.log.Debug("file skipped", "file", f.Name, "reason", skip.Reason)
		return nil, skip
	}

	if !p.opts.DryRun {
		if _, err := p.storage.Move(ctx, f.ID, res.FolderID); err != nil {
			// A resolved category is not sufficient: the move must also
			// succeed, otherwise the file is reported as skipped.
			return nil, p.skipForCapability(f, "move", domain.ReasonMoveFailed, err)
		}
	}

	p.log.Debug("file routed", "file", f.Name, "dest", res.Label, "method", res.Method)
	return &domain.MoveRecord{
		FileID:   f.ID,
		Name:     f.Name,
		DestID:   res.FolderID,
		DestName: res.Label,
		Category: res.Label,
		Method:   res.Method,
	}, nil
}

// classify walks the fallback chain, cheapest stage first, terminal on
// the first success. A failed prerequisite (download error, classifier
// transport failure, cost ceiling) stops the chain for this file rather
// than silently retrying through later, more expensive stages. When
// extraction yields no text, the content AI stage still runs on the
// file name alone.
func (p *Pipeline) classify(ctx context.Context, f domain.FileItem, idx *Index, gov *Governor, rc *runCache) (domain.ClassificationResult, *domain.SkipRecord) {
	// Stage 1: keyword scoring against the file name.
	if prof, _, ok := BestMatch(f.Name, idx.Profiles()); ok {
		return resolved(domain.MethodTitleRule, prof), nil
	}

	// Stage 2: folder name occurring inside the file name.
	if prof, ok := idx.SubstringMatch(f.Name); ok {
		return resolved(domain.MethodTitleSubstring, prof), nil
	}

	// Stage 3: fuzzy similarity between file name and folder names.
	if prof, _, ok := BestSimilar(f.Name, idx.Profiles(), p.opts.SimilarityThreshold); ok {
		return resolved(domain.MethodTitleSimilarity, prof), nil
	}

	// Stage 4: title-only AI classification.
	if p.classifier != nil {
		if err := gov.ReserveAICall(ctx); err != nil {
			return domain.ClassificationResult{}, p.skipForAIError(f, err)
		}
		dec, err := p.classifier.ClassifyByTitle(ctx, f.Name, idx.Profiles())
		if err != nil {
			return domain.ClassificationResult{}, p.skipForCapability(f, "classify", domain.ReasonClassifyFailed, err)
		}
		if dec.Resolved {
			if prof, ok := idx.MatchLabel(dec.Label); ok {
				return resolved(domain.MethodTitleAI, prof), nil
			}
		}
		// "NONE" or a label matching no folder: fall through to the
		// content-based stages.
	}

	// Stage 5: cache lookup by content hash.
	hash := f.ContentHash
	if hash == "" || f.Size == 0 {
		if meta, err := p.storage.GetMeta(ctx, f.ID); err == nil {
			if hash == "" {
				hash = meta.ContentHash
			}
			if f.Size == 0 {
				f.Size = meta.Size
			}
		} else {
			p.log.Debug("metadata fetch failed, content hash unavailable", "file", f.Name, "error", err)
		}
	}
	if label, ok := rc.Get(ctx, hash); ok {
		if prof, ok := idx.MatchLabel(label); ok {
			return resolved(domain.MethodCache, prof), nil
		}
		// Cached label no longer maps to a current folder; treat as miss.
	}

	// Stage 6: download, extract, keyword scoring against the content.
	// The downloaded bytes only feed the extractor; without one there is
	// nothing to fetch and the chain continues on the name alone.
	var text string
	if p.extractor != nil {
		if err := gov.CheckSize(f.Size); err != nil {
			return domain.ClassificationResult{}, skipFile(f, domain.Reason(domain.ReasonTooLarge, strconv.FormatInt(f.Size, 10)))
		}
		data, err := p.storage.Download(ctx, f.ID)
		if err != nil {
			return domain.ClassificationResult{}, p.skipForCapability(f, "download", domain.ReasonDownloadFailed, err)
		}
		text = gov.Truncate(p.extractText(ctx, f, data))
	}
	if text != "" {
		if prof, _, ok := BestMatch(text, idx.Profiles()); ok {
			rc.Add(hash, prof.Name)
			return resolved(domain.MethodContentRule, prof), nil
		}
	}

	// Stage 7: content AI classification, the last resort.
	if p.classifier == nil {
		return domain.ClassificationResult{}, skipFile(f, domain.ReasonNoMatch)
	}
	if err := gov.ReserveAICall(ctx); err != nil {
		return domain.ClassificationResult{}, p.skipForAIError(f, err)
	}
	dec, err := p.classifier.ClassifyByContent(ctx, f.Name, text, idx.Profiles())
	if err != nil {
		return domain.ClassificationResult{}, p.skipForCapability(f, "classify", domain.ReasonClassifyFailed, err)
	}
	if !dec.Resolved {
		return domain.ClassificationResult{}, skipFile(f, domain.ReasonAINone)
	}
	prof, ok := idx.MatchLabel(dec.Label)
	if !ok {
		return domain.ClassificationResult{}, skipFile(f, domain.Reason(domain.ReasonNoMatch, dec.Label))
	}
	rc.Add(hash, prof.Name)
	return resolved(domain.MethodContentAI, prof), nil
}

// extractText dispatches to the extractor capability. Every extraction
// failure is converted to "no content signal" here; it must never abort
// the file's classification.
func (p *Pipeline) extractText(ctx context.Context, f domain.FileItem, data []byte) string {
	if p.extractor == nil {
		return ""
	}
	text, err := p.extractor.ExtractText(ctx, f.Name, f.MimeType, data)
	if err != nil {
		p.log.Warn("text extraction failed", "file", f.Name, "mime", f.MimeType, "error", err)
		return ""
	}
	return text
}

func (p *Pipeline) skipForAIError(f domain.FileItem, err error) *domain.SkipRecord {
	if errors.Is(err, application.ErrAILimit) {
		return skipFile(f, domain.ReasonAILimit)
	}
	return p.skipForCapability(f, "classify", domain.ReasonClassifyFailed, err)
}

// skipForCapability wraps the underlying failure in a CapabilityError
// for the log and derives the per-file skip reason from its cause.
func (p *Pipeline) skipForCapability(f domain.FileItem, capability, code string, err error) *domain.SkipRecord {
	cerr := &application.CapabilityError{Capability: capability, FileID: f.ID, Err: err}
	p.log.Debug("capability failed", "file", f.Name, "error", cerr)
	return skipFile(f, domain.Reason(code, cerr.Err.Error()))
}

func resolved(m domain.Method, p domain.FolderProfile) domain.ClassificationResult {
	return domain.ClassificationResult{Method: m, Label: p.Name, FolderID: p.FolderID}
}

func skipFile(f domain.FileItem, reason string) *domain.SkipRecord {
	return &domain.SkipRecord{FileID: f.ID, Name: f.Name, Reason: reason}
}
