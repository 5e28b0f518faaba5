// Package gooffice renders declarative JSON document specs into .pptx,
// .xlsx and .docx files. A spec is parsed into typed blocks, validated
// against an embedded JSON Schema, composed against a resolved color
// theme and written through the format's writer package.
package gooffice

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/plotimg"
	"github.com/VantageDataChat/GoOffice/theme"
)

// Kind selects one of the three document formats.
type Kind string

const (
	KindPresentation Kind = "presentation"
	KindWorkbook     Kind = "workbook"
	KindReport       Kind = "report"
)

// KindForPath infers the document kind from an output file extension.
func KindForPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pptx":
		return KindPresentation, nil
	case ".xlsx":
		return KindWorkbook, nil
	case ".docx":
		return KindReport, nil
	default:
		return "", fmt.Errorf("%w: no format for %q", ErrUnknownKind, path)
	}
}

// Options configure an Engine.
type Options struct {
	// Root is the directory every output path and relative resource
	// path resolves against.
	Root string `json:"root" validate:"required"`
}

// RenderResult reports one completed render.
type RenderResult struct {
	Success  bool     `json:"success"`
	FilePath string   `json:"filePath"`
	Kind     Kind     `json:"kind"`
	Theme    string   `json:"theme,omitempty"`
	Count    int      `json:"count"`
	Warnings []string `json:"warnings,omitempty"`
}

// Engine renders document specs. One Engine may be shared by
// concurrent renders as long as every call targets a different output
// path; a single render is strictly sequential.
type Engine struct {
	opts    Options
	adapter *chartspec.Adapter
}

// NewEngine validates the options and builds an engine with the
// default raster chart pipeline.
func NewEngine(opts Options) (*Engine, error) {
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("engine options: %w", err)
	}
	renderer := plotimg.NewRenderer(plotimg.NewFontCache())
	return &Engine{opts: opts, adapter: chartspec.NewAdapter(renderer)}, nil
}

// Render parses, validates and renders doc as the given kind, writing
// the result to path under the engine root.
func (e *Engine) Render(kind Kind, path string, doc []byte) (*RenderResult, error) {
	switch kind {
	case KindPresentation:
		return e.RenderPresentation(path, doc)
	case KindWorkbook:
		return e.RenderWorkbook(path, doc)
	case KindReport:
		return e.RenderReport(path, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// RenderPresentation renders a presentation spec to a .pptx file.
func (e *Engine) RenderPresentation(path string, doc []byte) (*RenderResult, error) {
	if err := validateSpec(KindPresentation, doc); err != nil {
		return nil, err
	}
	var spec PresentationSpec
	if err := json.Unmarshal(doc, &spec); err != nil {
		return nil, fmt.Errorf("parse presentation spec: %w", err)
	}

	outPath, err := e.outputPath(path)
	if err != nil {
		return nil, err
	}
	for i := range spec.Slides {
		spec.Slides[i].Path = e.resolveResource(spec.Slides[i].Path)
	}

	th := theme.Resolve(spec.Theme, spec.CustomColors)
	pres, warnings := composeDeck(&spec, th)
	if err := pres.Save(outPath); err != nil {
		return nil, &SaveError{Path: outPath, Err: err}
	}
	return &RenderResult{
		Success:  true,
		FilePath: outPath,
		Kind:     KindPresentation,
		Theme:    th.Name,
		Count:    len(spec.Slides),
		Warnings: warnings,
	}, nil
}

// RenderWorkbook renders a spreadsheet spec to an .xlsx file.
func (e *Engine) RenderWorkbook(path string, doc []byte) (*RenderResult, error) {
	if err := validateSpec(KindWorkbook, doc); err != nil {
		return nil, err
	}
	var spec WorkbookSpec
	if err := json.Unmarshal(doc, &spec); err != nil {
		return nil, fmt.Errorf("parse workbook spec: %w", err)
	}

	outPath, err := e.outputPath(path)
	if err != nil {
		return nil, err
	}

	th := theme.Resolve("", nil)
	wb, warnings := composeBook(&spec, th)
	if err := wb.Save(outPath); err != nil {
		return nil, &SaveError{Path: outPath, Err: err}
	}
	return &RenderResult{
		Success:  true,
		FilePath: outPath,
		Kind:     KindWorkbook,
		Count:    wb.GetSheetCount(),
		Warnings: warnings,
	}, nil
}

// RenderReport renders a word-processor spec to a .docx file. Chart
// blocks leave intermediate PNGs in a ".charts" directory beside the
// output; they are removed after a successful save and kept for the
// caller's sweep when the save fails.
func (e *Engine) RenderReport(path string, doc []byte) (*RenderResult, error) {
	if err := validateSpec(KindReport, doc); err != nil {
		return nil, err
	}
	var spec ReportSpec
	if err := json.Unmarshal(doc, &spec); err != nil {
		return nil, fmt.Errorf("parse report spec: %w", err)
	}

	outPath, err := e.outputPath(path)
	if err != nil {
		return nil, err
	}
	for i := range spec.Blocks {
		spec.Blocks[i].Path = e.resolveResource(spec.Blocks[i].Path)
	}

	th := theme.Resolve("", nil)
	document, tempFiles, warnings := composeReport(&spec, th, e.adapter, filepath.Dir(outPath))
	if err := document.Save(outPath); err != nil {
		return nil, &SaveError{Path: outPath, Err: err}
	}
	sweepScratch(tempFiles)
	return &RenderResult{
		Success:  true,
		FilePath: outPath,
		Kind:     KindReport,
		Count:    len(spec.Blocks),
		Warnings: warnings,
	}, nil
}

// outputPath joins path with the engine root and ensures the parent
// directory exists.
func (e *Engine) outputPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output path is empty")
	}
	out := path
	if !filepath.IsAbs(out) {
		out = filepath.Join(e.opts.Root, out)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return out, nil
}

// resolveResource joins a relative image path with the engine root.
// Empty and absolute paths pass through.
func (e *Engine) resolveResource(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.opts.Root, path)
}

// sweepScratch removes the intermediate chart images of a successful
// render, then the scratch directory itself once it is empty.
func sweepScratch(tempFiles []string) {
	dirs := make(map[string]struct{})
	for _, f := range tempFiles {
		os.Remove(f)
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		os.Remove(dir)
	}
}
