package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "gooze.dev/pkg/mutforge/internal/model"
	"golang.org/x/term"
)

const (
	appTitle      = "mutforge - Mutation Combinations"
	recentTasks   = 5
	progressWidth = 40
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Border(lipgloss.RoundedBorder()).Padding(0, 2)
	mutedStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("245"))
	stateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	page    *pageModel
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start prepares the display; run mode starts the live progress program.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := startConfig(options)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.page = nil

	if cfg.mode != ModeRun || p.program != nil {
		return nil
	}

	width, _ := p.size()
	program := tea.NewProgram(newRunModel(width), tea.WithOutput(p.output), tea.WithInput(nil))
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Progress display stopped", "error", err)
		}
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the live program after it rendered its final frame.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(closeMsg{})
	<-done
}

// Wait shows the pending plan or report page; long pages are scrollable
// until the user quits.
func (p *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	page := p.page
	p.page = nil
	p.mu.Unlock()

	if page == nil {
		return
	}

	if err := p.show(*page); err != nil {
		slog.Error("Failed to display page", "error", err)
	}
}

func (p *TUI) show(page pageModel) error {
	page.width, page.height = p.size()

	// If list is small, just print and exit
	if !page.needsPagination() {
		_, err := fmt.Fprint(p.output, page.View())
		return err
	}

	program := tea.NewProgram(page, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) size() (int, int) {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 0, 0
}

func (p *TUI) send(msg tea.Msg) bool {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayPlan queues the combination list for Wait.
func (p *TUI) DisplayPlan(ctx context.Context, id m.Identity, totalRecords int, result m.GenerationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page := newPlanPage(id, totalRecords, result)

	p.mu.Lock()
	p.page = &page
	p.mu.Unlock()

	return nil
}

// DisplayReports queues the report list for Wait.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.BugReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page := newReportsPage(reports)

	p.mu.Lock()
	p.page = &page
	p.mu.Unlock()

	return nil
}

// DisplayRunInfo resets the progress view for a new bug.
func (p *TUI) DisplayRunInfo(ctx context.Context, id m.Identity, planned int, workers int) {
	if ctx.Err() != nil {
		return
	}

	p.send(runInfoMsg{identity: id.String(), planned: planned, workers: workers})
}

// TaskStarted implements UI.
func (p *TUI) TaskStarted(slot int, c m.Combination) {
	p.send(taskStartedMsg{slot: slot, id: c.ID, mutators: strings.Join(c.Mutators(), "+"), at: time.Now()})
}

// TaskStateChanged implements UI.
func (p *TUI) TaskStateChanged(slot int, combinationID string, state m.TaskState) {
	p.send(taskStateMsg{slot: slot, id: combinationID, state: state})
}

// TaskFinished implements UI.
func (p *TUI) TaskFinished(slot int, combinationID string, state m.TaskState) {
	p.send(taskFinishedMsg{slot: slot, id: combinationID, state: state})
}

// DisplayBugSummary appends a bug's outcome to the progress view.
func (p *TUI) DisplayBugSummary(ctx context.Context, report m.BugReport) {
	if ctx.Err() != nil {
		return
	}

	line := bugSummaryLine(report)
	if !p.send(bugSummaryMsg{line: line}) {
		_, _ = fmt.Fprintln(p.output, line)
	}
}

// DisplayMutationScore shows the final score.
func (p *TUI) DisplayMutationScore(ctx context.Context, score float64) {
	if ctx.Err() != nil {
		return
	}

	if !p.send(scoreMsg{score: score}) {
		_, _ = fmt.Fprintf(p.output, "  📊 Mutation score: %.1f%%\n", score)
	}
}

// DisplayCheck prints the oracle probe outcome.
func (p *TUI) DisplayCheck(ctx context.Context, run m.OracleRun, err error) {
	if ctx.Err() != nil {
		return
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")

	switch {
	case err != nil:
		fmt.Fprintf(&b, "  %s oracle unavailable: %v\n", survivedStyle.Render("✗"), err)
	case !run.Succeeded():
		fmt.Fprintf(&b, "  %s oracle exited with code %d\n", survivedStyle.Render("✗"), run.ExitCode)

		if out := strings.TrimSpace(run.Output); out != "" {
			fmt.Fprintf(&b, "%s\n", mutedStyle.Render(out))
		}
	default:
		fmt.Fprintf(&b, "  %s oracle ready (%s)\n", killedStyle.Render("✓"), run.Duration.Round(time.Millisecond))
	}

	_, _ = fmt.Fprint(p.output, b.String())
}

func bugSummaryLine(report m.BugReport) string {
	st := summarize(report)

	icon := killedStyle.Render("✓")
	if st.survived > 0 || st.failures > 0 {
		icon = survivedStyle.Render("✗")
	}

	return fmt.Sprintf("  %s %s: %d mutants (killed: %d, survived: %d, not compiling: %d, failed: %d)",
		icon, report.Identity, st.results, st.killed, st.survived, st.uncompiled, st.failures)
}

type (
	closeMsg   struct{}
	runInfoMsg struct {
		identity string
		planned  int
		workers  int
	}
	taskStartedMsg struct {
		slot     int
		id       string
		mutators string
		at       time.Time
	}
	taskStateMsg struct {
		slot  int
		id    string
		state m.TaskState
	}
	taskFinishedMsg struct {
		slot  int
		id    string
		state m.TaskState
	}
	bugSummaryMsg struct{ line string }
	scoreMsg      struct{ score float64 }
)

type slotView struct {
	id       string
	mutators string
	state    m.TaskState
	started  time.Time
}

// runModel renders live worker progress.
type runModel struct {
	identity  string
	planned   int
	workers   int
	finished  int
	slots     map[int]slotView
	recent    []string
	summaries []string
	score     *float64
	bar       progress.Model
	width     int
}

func newRunModel(width int) runModel {
	rm := runModel{
		slots: map[int]slotView{},
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}

	return rm.resize(width)
}

func (rm runModel) resize(width int) runModel {
	rm.width = width
	if width > 0 {
		rm.bar.Width = max(10, min(progressWidth, width-20))
	}

	return rm
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return rm.resize(msg.Width), nil

	case runInfoMsg:
		rm.identity = msg.identity
		rm.planned = msg.planned
		rm.workers = msg.workers
		rm.finished = 0
		rm.slots = map[int]slotView{}
		rm.recent = nil

	case taskStartedMsg:
		rm.slots[msg.slot] = slotView{id: msg.id, mutators: msg.mutators, state: m.StateQueued, started: msg.at}

	case taskStateMsg:
		if sv, ok := rm.slots[msg.slot]; ok && sv.id == msg.id {
			sv.state = msg.state
			rm.slots[msg.slot] = sv
		}

	case taskFinishedMsg:
		delete(rm.slots, msg.slot)
		rm.finished++
		rm.recent = append(rm.recent, finishedLine(msg.id, msg.state))

		if len(rm.recent) > recentTasks {
			rm.recent = rm.recent[len(rm.recent)-recentTasks:]
		}

	case bugSummaryMsg:
		rm.summaries = append(rm.summaries, msg.line)

	case scoreMsg:
		score := msg.score
		rm.score = &score

	case closeMsg:
		rm.slots = map[int]slotView{}
		return rm, tea.Quit
	}

	return rm, nil
}

func finishedLine(id string, state m.TaskState) string {
	switch state {
	case m.StateDone:
		return fmt.Sprintf("    %s %s", killedStyle.Render("✓"), id)
	case m.StateTimedOut:
		return fmt.Sprintf("    %s %s %s", survivedStyle.Render("⏱"), id, mutedStyle.Render(string(state)))
	default:
		return fmt.Sprintf("    %s %s %s", survivedStyle.Render("✗"), id, mutedStyle.Render(string(state)))
	}
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")

	for _, line := range rm.summaries {
		fmt.Fprintf(&b, "%s\n", line)
	}

	if rm.identity != "" {
		if len(rm.summaries) > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "  🧬 %s with %d worker(s)\n", rm.identity, rm.workers)
		fmt.Fprintf(&b, "  %s %d/%d\n", rm.bar.ViewAs(rm.fraction()), rm.finished, rm.planned)

		rm.writeSlots(&b)

		for _, line := range rm.recent {
			fmt.Fprintf(&b, "%s\n", line)
		}
	}

	if rm.score != nil {
		fmt.Fprintf(&b, "\n  📊 Mutation score: %.1f%%\n", *rm.score)
	}

	return b.String()
}

func (rm runModel) fraction() float64 {
	if rm.planned == 0 {
		return 1
	}

	return float64(rm.finished) / float64(rm.planned)
}

func (rm runModel) writeSlots(b *strings.Builder) {
	slots := make([]int, 0, len(rm.slots))
	for slot := range rm.slots {
		slots = append(slots, slot)
	}

	sort.Ints(slots)

	for _, slot := range slots {
		sv := rm.slots[slot]
		elapsed := ""

		if !sv.started.IsZero() {
			elapsed = time.Since(sv.started).Round(time.Second).String()
		}

		fmt.Fprintf(b, "  [%d] %s %s %s %s\n",
			slot, sv.id, mutedStyle.Render(sv.mutators), stateStyle.Render(string(sv.state)), mutedStyle.Render(elapsed))
	}
}

// pageModel is a scrollable list with a title and a fixed summary.
type pageModel struct {
	heading  string
	lines    []string
	summary  []string
	empty    string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPlanPage(id m.Identity, totalRecords int, result m.GenerationResult) pageModel {
	lines := make([]string, 0, len(result.Combinations))
	for _, c := range result.Combinations {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			c.ID, stateStyle.Render(strings.Join(c.Mutators(), "+")), mutedStyle.Render(locations(c.Records))))
	}

	summary := []string{
		fmt.Sprintf("  📊 Total: %d combination(s) from %d mutation record(s)", len(result.Combinations), totalRecords),
	}

	if result.Shortfall > 0 {
		summary = append(summary, survivedStyle.Render(fmt.Sprintf("  Shortfall: %d", result.Shortfall)))
	} else {
		summary = append(summary, mutedStyle.Render("  Shortfall: 0"))
	}

	return pageModel{
		heading: fmt.Sprintf("  🔢 %s combinations:", id),
		lines:   lines,
		summary: summary,
		empty:   "  📭 No combinations generated",
	}
}

func newReportsPage(reports []m.BugReport) pageModel {
	sorted := append([]m.BugReport(nil), reports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identity.String() < sorted[j].Identity.String()
	})

	var total reportStats

	lines := make([]string, 0, len(sorted))
	for _, r := range sorted {
		total.add(summarize(r))
		lines = append(lines, bugSummaryLine(r))
	}

	return pageModel{
		heading: "  🧬 Mutation Combination Reports:",
		lines:   lines,
		summary: []string{
			"  📊 Summary:",
			fmt.Sprintf("  Bugs: %d | Mutants: %d | Killed: %d | Survived: %d | Failed: %d | Score: %.1f%%",
				len(sorted), total.results, total.killed, total.survived, total.failures, total.score()),
		},
		empty: "  📭 No reports found",
	}
}

func (pm pageModel) Init() tea.Cmd {
	return nil
}

func (pm pageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pageModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case "up", "k":
		pm.offset = max(pm.offset-1, 0)

	case "g", "home":
		pm.offset = 0

	case "G", "end":
		pm.offset = pm.maxOffset()

	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

func (pm pageModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}
	// Reserved lines:
	// - Header box + heading: 6 lines
	// - Summary: blank + its lines
	// - Footer (pagination): 3 lines
	reserved := 6 + 1 + len(pm.summary) + 3

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm pageModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

func (pm pageModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pageModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n\n", pm.heading)

	if len(pm.lines) == 0 {
		fmt.Fprintf(&b, "%s\n", pm.empty)
		return b.String()
	}

	paginate := pm.needsPagination()

	visible := pm.lines
	if paginate {
		start := min(pm.offset, len(pm.lines)-1)
		end := min(start+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		fmt.Fprintf(&b, "%s\n", line)
	}

	b.WriteString("\n")

	for _, line := range pm.summary {
		fmt.Fprintf(&b, "%s\n", line)
	}

	if paginate {
		end := min(pm.offset+pm.itemsPerPage(), len(pm.lines))

		fmt.Fprintf(&b, "\n  Lines %d-%d of %d\n", pm.offset+1, end, len(pm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
