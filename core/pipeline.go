package core

import (
	"context"
	"fmt"
	"time"

	"github.com/XAN44/create-next-elysia/config"
	"github.com/XAN44/create-next-elysia/exec"
	"github.com/XAN44/create-next-elysia/fs"
	"github.com/XAN44/create-next-elysia/git"
	"github.com/XAN44/create-next-elysia/logger"
)

type Step interface {
	Execute(ctx context.Context, state *State) error
}

type StepType int

const (
	ResolveTarget StepType = iota
	CreateDirectory
	CloneTemplate
	InstallDependencies
	SetRootRemote
	WriteSubmoduleConfig
	SyncSubmodules
	CommitSubmoduleConfig
	PushRepositories
)

func (t StepType) String() string {
	switch t {
	case ResolveTarget:
		return "ResolveTarget"
	case CreateDirectory:
		return "CreateDirectory"
	case CloneTemplate:
		return "CloneTemplate"
	case InstallDependencies:
		return "InstallDependencies"
	case SetRootRemote:
		return "SetRootRemote"
	case WriteSubmoduleConfig:
		return "WriteSubmoduleConfig"
	case SyncSubmodules:
		return "SyncSubmodules"
	case CommitSubmoduleConfig:
		return "CommitSubmoduleConfig"
	case PushRepositories:
		return "PushRepositories"
	default:
		return fmt.Sprintf("StepType(%d)", int(t))
	}
}

// State is the transient, process-local state threaded through each step.
// Answers are immutable once read; TargetPath is written once by
// ResolveTargetStep and only consumed afterwards.
type State struct {
	Request    *Request
	Remotes    *RemoteConfig
	Settings   *config.Settings
	TargetPath string

	FS     *fs.FileSystem
	Runner exec.CommandRunner
	Git    *git.Client
	Logger logger.Logger

	// Publisher is set by NewPipeline so advisory steps can surface
	// warnings without failing the run.
	Publisher StepPublisher
}

// warn publishes an advisory failure for a step that continues regardless.
func warn(state *State, step StepType, err error) {
	if state.Publisher != nil {
		state.Publisher.Warn(step, err)
	}
}

func NewState(req *Request, settings *config.Settings, fsys *fs.FileSystem, runner exec.CommandRunner, l logger.Logger) *State {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &State{
		Request:  req,
		Settings: settings,
		FS:       fsys,
		Runner:   runner,
		Git:      git.NewClient(runner),
		Logger:   l,
	}
}

var stepMap = map[StepType]Step{
	ResolveTarget:         &ResolveTargetStep{},
	CreateDirectory:       &CreateDirectoryStep{},
	CloneTemplate:         &CloneTemplateStep{},
	InstallDependencies:   &InstallDependenciesStep{},
	SetRootRemote:         &SetRootRemoteStep{},
	WriteSubmoduleConfig:  &WriteSubmoduleConfigStep{},
	SyncSubmodules:        &SyncSubmodulesStep{},
	CommitSubmoduleConfig: &CommitSubmoduleConfigStep{},
	PushRepositories:      &PushRepositoriesStep{},
}

type StepManager struct {
	steps []StepType
}

func NewStepManager() *StepManager {
	return &StepManager{}
}

func (sm *StepManager) AddStep(step StepType) {
	sm.steps = append(sm.steps, step)
}

func (sm *StepManager) GetStep(stepType StepType) Step {
	return stepMap[stepType]
}

type Pipeline struct {
	stepManager *StepManager
	state       *State
	publisher   StepPublisher
}

func NewPipeline(state *State, pub StepPublisher) *Pipeline {
	if pub == nil {
		pub = &DefaultStepPublisher{}
	}
	state.Publisher = pub
	return &Pipeline{
		stepManager: NewStepManager(),
		state:       state,
		publisher:   pub,
	}
}

func (p *Pipeline) AddStep(step StepType) {
	p.stepManager.AddStep(step)
}

// Execute runs the registered steps strictly in order. A step returning an
// error is fatal and aborts the pipeline; advisory failures are published as
// warnings by the steps themselves and never reach this loop.
func (p *Pipeline) Execute(ctx context.Context) error {
	p.state.Logger.Debug("Starting pipeline execution")
	for i, stepType := range p.stepManager.steps {
		p.state.Logger.Debug(fmt.Sprintf("Attempting to execute step %d: %v", i, stepType))
		step := p.stepManager.GetStep(stepType)
		if step == nil {
			p.state.Logger.Error(fmt.Sprintf("Step %v not found", stepType))
			p.publisher.Error(stepType, fmt.Errorf("step %v not found", stepType))
			return fmt.Errorf("step %v not found", stepType)
		}

		p.publisher.StepStarted(stepType)
		startTime := time.Now()
		if err := step.Execute(ctx, p.state); err != nil {
			p.state.Logger.Error(fmt.Sprintf("Error executing step %v: %v", stepType, err))
			p.publisher.Error(stepType, err)
			return err
		}
		duration := time.Since(startTime)
		p.state.Logger.Debug(fmt.Sprintf("Step %v completed in %v", stepType, duration))
		p.publisher.PublishStep(stepType)
	}

	p.state.Logger.Debug("Pipeline execution completed")
	return nil
}

// NewProvisionPipeline builds the clone-and-install sequence. ResolveTarget
// and CloneTemplate are the only steps that can fail it.
func NewProvisionPipeline(state *State, pub StepPublisher) *Pipeline {
	p := NewPipeline(state, pub)
	p.AddStep(ResolveTarget)
	p.AddStep(CreateDirectory)
	p.AddStep(CloneTemplate)
	p.AddStep(InstallDependencies)
	return p
}

// NewRewritePipeline builds the remote-rewrite sequence. Every step in it is
// best-effort: failures are published as warnings and never abort the run.
func NewRewritePipeline(state *State, pub StepPublisher) *Pipeline {
	p := NewPipeline(state, pub)
	p.AddStep(SetRootRemote)
	p.AddStep(WriteSubmoduleConfig)
	p.AddStep(SyncSubmodules)
	p.AddStep(CommitSubmoduleConfig)
	p.AddStep(PushRepositories)
	return p
}

type StepPublisher interface {
	StepStarted(step StepType)
	PublishStep(step StepType)
	Warn(step StepType, err error)
	Error(step StepType, err error)
}

type DefaultStepPublisher struct{}

func (p *DefaultStepPublisher) StepStarted(step StepType) {}

func (p *DefaultStepPublisher) PublishStep(step StepType) {}

func (p *DefaultStepPublisher) Warn(step StepType, err error) {}

func (p *DefaultStepPublisher) Error(step StepType, err error) {}
