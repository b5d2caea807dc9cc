package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/cfg"
	"github.com/go-pdg/jpdg/internal/constants"
	"github.com/go-pdg/jpdg/internal/parser"
	"github.com/go-pdg/jpdg/internal/pdg"
	"github.com/go-pdg/jpdg/internal/pe"
	"github.com/go-pdg/jpdg/service"
)

// AnalyzeUseCase runs the full PE -> CFG -> PDG pipeline over the files
// resolved from an AnalyzeRequest: parse each file into an AST, lower every
// class into the PE tree, build each method's CFG, then overlay its PDG.
// A file that fails to parse or build is recorded as a FileResult error and
// does not abort the rest of the batch.
type AnalyzeUseCase struct {
	fileReader domain.FileReader
	progress   domain.ProgressReporter
	version    string
}

// NewAnalyzeUseCase wires a use case against fileReader for resolving and
// reading source files. progress may be nil, in which case no progress is
// reported.
func NewAnalyzeUseCase(fileReader domain.FileReader, progress domain.ProgressReporter, version string) *AnalyzeUseCase {
	if progress == nil {
		progress = noOpProgress{}
	}
	return &AnalyzeUseCase{fileReader: fileReader, progress: progress, version: version}
}

type noOpProgress struct{}

func (noOpProgress) StartProgress(int)               {}
func (noOpProgress) UpdateProgress(string, int, int) {}
func (noOpProgress) FinishProgress()                 {}

// Execute validates req, resolves its paths to concrete Java files, and runs
// the pipeline over each one.
func (u *AnalyzeUseCase) Execute(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if req == nil {
		return nil, domain.NewValidationError("analyze request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	// Paths are resolved one at a time so an unresolvable one fails alone.
	var files []string
	var unresolved []domain.FileResult
	for _, path := range req.Paths {
		resolved, err := ResolveFilePaths(u.fileReader, []string{path}, req.Recursive, req.IncludePatterns, req.ExcludePatterns, false)
		if err != nil {
			unresolved = append(unresolved, domain.FileResult{FilePath: path, Error: err.Error()})
		}
		files = append(files, resolved...)
	}

	pdgConfig := pdg.Config{
		BuildControlDependence:                        req.BuildControlDependence,
		BuildDataDependence:                            req.BuildDataDependence,
		BuildExecutionDependence:                       req.BuildExecutionDependence,
		ControlDependenceFromEnterToAllNodes:          req.ControlDependenceFromEnterToAllNodes,
		ControlDependenceFromEnterToParameterNodes:    req.ControlDependenceFromEnterToParameterNodes,
		AvoidDefPropagationWhenBuildingDataDependence: req.AvoidDefPropagationWhenBuildingDataDependence,
	}

	// defuse is pure analysis over an already-built PE tree and gen is an
	// atomic counter, so both are safe to share across the concurrent
	// per-file tasks below; the parser and CFG builder are not, so each task
	// gets its own.
	gen := pe.NewIDGen()
	defuse := pe.NewDefUseAnalyzer(constants.ReceiverMutatorNames, constants.ReceiverMayMutatorNames)

	resp := &domain.AnalyzeResponse{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Version:     u.version,
	}

	u.progress.StartProgress(len(files))

	results := make([]domain.FileResult, len(files))
	var completed int
	var mu sync.Mutex

	executor := service.NewParallelExecutor()
	executor.SetMaxConcurrency(8)

	tasks := make([]domain.ExecutableTask, len(files))
	for i, path := range files {
		tasks[i] = service.NewSimpleTask(path, true, func(taskCtx context.Context) (interface{}, error) {
			result := u.analyzeFile(taskCtx, parser.New(), gen, defuse, pdgConfig, path)
			results[i] = result

			mu.Lock()
			completed++
			u.progress.UpdateProgress(path, completed-1, len(files))
			mu.Unlock()

			if result.Error != "" {
				return nil, fmt.Errorf("%s: %s", path, result.Error)
			}
			return nil, nil
		})
	}

	execErr := executor.Execute(ctx, tasks)
	u.progress.FinishProgress()

	var errs error
	if execErr != nil {
		errs = multierr.Append(errs, execErr)
	}
	for _, result := range append(results, unresolved...) {
		resp.Files = append(resp.Files, result)
		resp.Summary.TotalFiles++
		if result.Error != "" {
			resp.Summary.FilesFailed++
			continue
		}
		resp.Summary.FilesOK++
		for _, cls := range result.Classes {
			resp.Summary.TotalClasses++
			resp.Summary.TotalMethods += len(cls.Methods)
			for _, m := range cls.Methods {
				resp.Summary.TotalCFGNodes += m.CFGNodes
				resp.Summary.TotalPDGEdges += m.ControlEdges + m.DataEdges + m.ExecutionEdges
			}
		}
	}

	resp.Duration = time.Since(start)
	_ = errs // surfaced per-file via FileResult.Error; a batch run never fails outright on one bad file
	return resp, nil
}

// analyzeFile runs the pipeline over a single source file, recovering a
// parse or build failure into a FileResult.Error rather than propagating it.
func (u *AnalyzeUseCase) analyzeFile(ctx context.Context, p *parser.Parser, gen *pe.IDGen, defuse *pe.DefUseAnalyzer, pdgConfig pdg.Config, path string) domain.FileResult {
	result := domain.FileResult{FilePath: path}

	content, err := u.fileReader.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	root, err := p.ParseToAST(ctx, content)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	peBuilder := pe.NewBuilder(gen)
	cfgBuilder := cfg.NewBuilder()

	for _, classNode := range root.Methods {
		if classNode.Kind != parser.KindClassDeclaration {
			continue
		}
		class := peBuilder.BuildClass(classNode)
		if class == nil {
			continue
		}
		classResult := domain.ClassResult{Name: class.Name}
		for _, method := range class.Methods {
			classResult.Methods = append(classResult.Methods, u.analyzeMethod(cfgBuilder, defuse, pdgConfig, method))
		}
		result.Classes = append(result.Classes, classResult)
	}

	return result
}

// ClassGraphs holds the live CFG/PDG objects for one class's methods, for
// callers that need the graphs themselves rather than the MethodGraphSummary
// counts Execute reports (the DOT reporter's WriteCFGs/WritePDGs need the
// actual *cfg.CFG/*pdg.PDG objects, not a serialized summary).
type ClassGraphs struct {
	Name    string
	Methods []MethodGraphs
}

// MethodGraphs holds one method's CFG and PDG (PDG is nil if CFG
// construction failed, mirroring analyzeMethod's early return).
type MethodGraphs struct {
	Name string
	CFG  *cfg.CFG
	PDG  *pdg.PDG
}

// BuildFileGraphs runs the PE -> CFG -> PDG pipeline over a single file and
// returns the live graph objects, bypassing the FileResult/MethodGraphSummary
// DTOs Execute produces. Rendering formats (DOT) need the graphs themselves;
// everything else (JSON/YAML/text reporting) goes through Execute instead.
func (u *AnalyzeUseCase) BuildFileGraphs(ctx context.Context, path string, pdgConfig pdg.Config) ([]ClassGraphs, error) {
	content, err := u.fileReader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := parser.New()
	root, err := p.ParseToAST(ctx, content)
	if err != nil {
		return nil, domain.NewParseError(path, err)
	}

	gen := pe.NewIDGen()
	defuse := pe.NewDefUseAnalyzer(constants.ReceiverMutatorNames, constants.ReceiverMayMutatorNames)
	peBuilder := pe.NewBuilder(gen)
	cfgBuilder := cfg.NewBuilder()

	var classes []ClassGraphs
	for _, classNode := range root.Methods {
		if classNode.Kind != parser.KindClassDeclaration {
			continue
		}
		class := peBuilder.BuildClass(classNode)
		if class == nil {
			continue
		}
		cg := ClassGraphs{Name: class.Name}
		for _, method := range class.Methods {
			graph := cfgBuilder.Build(method)
			var depGraph *pdg.PDG
			if graph != nil {
				depGraph = pdg.NewBuilder(pdgConfig, defuse).Build(method, graph)
			}
			cg.Methods = append(cg.Methods, MethodGraphs{Name: method.Name, CFG: graph, PDG: depGraph})
		}
		classes = append(classes, cg)
	}
	return classes, nil
}

// analyzeMethod builds one method's CFG and PDG and reduces them to a
// MethodGraphSummary; the graphs themselves are discarded once reported,
// matching the batch CLI/MCP use of this use case (no interactive graph
// browsing is offered here).
func (u *AnalyzeUseCase) analyzeMethod(cfgBuilder *cfg.Builder, defuse *pe.DefUseAnalyzer, pdgConfig pdg.Config, method *pe.Method) domain.MethodGraphSummary {
	summary := domain.MethodGraphSummary{
		Name:       method.Name,
		Statements: len(method.Body),
	}

	graph := cfgBuilder.Build(method)
	if graph == nil {
		return summary
	}
	summary.CFGNodes = len(graph.Nodes)
	summary.UnreachableCFG = len(graph.UnreachableNodes())
	for _, n := range graph.Nodes {
		summary.CFGEdges += len(n.Successors)
	}

	pdgBuilder := pdg.NewBuilder(pdgConfig, defuse)
	depGraph := pdgBuilder.Build(method, graph)
	if depGraph == nil {
		return summary
	}
	summary.PDGNodes = len(depGraph.Nodes)
	summary.ControlEdges = len(depGraph.EdgesOfKind(pdg.EdgeControl))
	summary.DataEdges = len(depGraph.EdgesOfKind(pdg.EdgeData))
	summary.ExecutionEdges = len(depGraph.EdgesOfKind(pdg.EdgeExecution))

	return summary
}
