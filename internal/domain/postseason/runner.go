package postseason

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/bracket"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// PoolRun is the outcome of playing one pool through the board weeks.
// Bracket is nil when the pool has fewer than two teams.
type PoolRun struct {
	Pool      Pool
	Teams     []string
	Bracket   *bracket.Bracket
	StartWeek int
}

// Runner plays the pool brackets week by week and annotates the board.
type Runner struct {
	board    *Board
	settings season.Settings
	logger   *logging.Logger
}

func NewRunner(board *Board, settings season.Settings, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{board: board, settings: settings, logger: logger}
}

// Run plays every non-empty pool concurrently. Pools never share teams, so
// each goroutine writes a disjoint set of board rows. The returned runs follow
// Order regardless of completion order.
func (r *Runner) Run(ctx context.Context, pools Pools) ([]PoolRun, error) {
	playoffSize := len(pools.Playoff)
	runs := make([]PoolRun, len(Order))

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, name := range Order {
		i, name := i, name
		teams := pools.Teams(name)
		p.Go(func(ctx context.Context) error {
			run, err := r.RunPool(ctx, name, teams, playoffSize)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make([]PoolRun, 0, len(runs))
	for _, run := range runs {
		if len(run.Teams) == 0 {
			continue
		}
		out = append(out, run)
	}
	return out, nil
}

// RunPool builds the bracket for one pool and walks the board weeks: weeks
// before the pool starts get a preview, the rest up to min(current, end) are
// resolved in increasing order.
func (r *Runner) RunPool(ctx context.Context, name Pool, teams []string, playoffSize int) (PoolRun, error) {
	run := PoolRun{
		Pool:      name,
		Teams:     append([]string(nil), teams...),
		StartWeek: StartWeek(r.settings, len(teams), playoffSize),
	}
	if len(teams) < 2 {
		return run, nil
	}

	b, err := bracket.Build(teams)
	if err != nil {
		return PoolRun{}, fmt.Errorf("build %s bracket: %w", name, err)
	}
	run.Bracket = b

	last := min(r.board.CurrentWeek(), r.settings.EndWeek)
	for _, week := range r.board.Weeks() {
		if err := ctx.Err(); err != nil {
			return PoolRun{}, err
		}
		if week > last {
			break
		}
		if week < run.StartWeek {
			r.Preview(name, b, week)
			continue
		}
		if err := r.ResolveWeek(ctx, name, b, week); err != nil {
			return PoolRun{}, err
		}
		if week+1 <= last {
			r.Preview(name, b, week+1)
		}
	}

	return run, nil
}

// Preview labels the pool's rows for week and fills in the opponents of the
// currently active matches. The bracket is not touched.
func (r *Runner) Preview(name Pool, b *bracket.Bracket, week int) {
	for _, team := range b.Seeds() {
		if row, ok := r.board.Row(team, week); ok {
			row.Bracket = string(name)
		}
	}
	for _, p := range b.ActiveMatches() {
		left, _ := p.Left.Team()
		right, _ := p.Right.Team()
		leftRow, leftOK := r.board.Row(left, week)
		rightRow, rightOK := r.board.Row(right, week)
		if leftOK {
			setOpponent(leftRow, right, rightRow)
		}
		if rightOK {
			setOpponent(rightRow, left, leftRow)
		}
	}
}

// ResolveWeek decides every match that is active at the start of week using
// that week's points. Matches whose rows are missing or incomplete stay open
// and the gap is recorded on whichever rows exist.
func (r *Runner) ResolveWeek(ctx context.Context, name Pool, b *bracket.Bracket, week int) error {
	for _, p := range b.ActiveMatches() {
		left, _ := p.Left.Team()
		right, _ := p.Right.Team()
		leftRow, leftOK := r.board.Row(left, week)
		rightRow, rightOK := r.board.Row(right, week)

		if !leftOK || !rightOK || leftRow.Gap || rightRow.Gap {
			issue := crerr.Wrapf(season.ErrDataGap, "%s round %d %s vs %s undecided in week %d", name, p.Round, left, right, week)
			if leftOK {
				leftRow.addIssue(issue)
			}
			if rightOK {
				rightRow.addIssue(issue)
			}
			r.logger.WarnContext(ctx, "bracket match skipped", "game_id", r.settings.GameID, "pool", string(name), "week", week, "error", issue)
			continue
		}

		label := fmt.Sprintf("%s Round %d", name, p.Round)
		leftRow.Bracket = label
		rightRow.Bracket = label
		setOpponent(leftRow, right, rightRow)
		setOpponent(rightRow, left, leftRow)

		winner := season.Decide(left, leftRow.Points, right, rightRow.Points)
		if winner == left {
			leftRow.Result, rightRow.Result = season.ResultWin, season.ResultLoss
		} else {
			leftRow.Result, rightRow.Result = season.ResultLoss, season.ResultWin
		}

		if err := b.SetWinner(p.ID, winner); err != nil {
			return fmt.Errorf("%s week %d: %w", name, week, err)
		}
		r.logger.DebugContext(ctx, "bracket match decided",
			"game_id", r.settings.GameID,
			"pool", string(name),
			"week", week,
			"round", p.Round,
			"winner", winner,
			"left", left,
			"left_points", leftRow.Points,
			"right", right,
			"right_points", rightRow.Points,
		)
	}
	return nil
}

func setOpponent(row *BoardRow, oppKey string, opp *BoardRow) {
	row.OppTeamKey = oppKey
	row.OppTeam = oppKey
	row.OppManager = oppKey
	row.OppPoints = 0
	row.OppProjected = 0
	if opp == nil {
		return
	}
	row.OppTeam = opp.Team
	row.OppManager = opp.Manager
	row.OppPoints = opp.Points
	row.OppProjected = opp.Projected
}
