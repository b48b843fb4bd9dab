package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"market-tycoon/internal/engine"
	"market-tycoon/internal/logging"
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

func newPlayCmd(app *App) *cobra.Command {
	var days int
	var seed int64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive run",
		Long: `Start an interactive game session.

Each turn you can trade, then advance to the next day. The run ends when the
duration expires (win, if you are solvent) or when your net worth hits zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			eng := engine.New(app.Catalog, app.Config, engine.NewRand(seed), logging.WithGame(app.Logger, ""))
			state := eng.StartGame(days)

			sess := &playSession{
				app:    app,
				eng:    eng,
				state:  state,
				output: NewOutput(cmd),
				reader: bufio.NewScanner(cmd.InOrStdin()),
			}
			return sess.run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "run duration in days (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = random)")
	return cmd
}

type playSession struct {
	app    *App
	eng    *engine.Engine
	state  *engine.State
	output *Output
	reader *bufio.Scanner
}

func (p *playSession) run(ctx context.Context) error {
	o := p.output
	s := p.state

	if p.app.Store != nil {
		p.app.Store.CreateRun(ctx, &models.RunRecord{
			GameID:       s.GameID,
			StartedAt:    time.Now(),
			Duration:     s.Duration,
			StartingCash: s.StartingCash,
			Status:       models.GameRunning,
		})
	}

	o.Bold("Day %d of %d. You have %s. Type 'help' for commands.", s.Day, s.Duration, utils.FormatUSD(s.Cash))

	for {
		o.Printf("%s ", o.Cyan(fmt.Sprintf("day %d>", s.Day)))
		if !p.reader.Scan() {
			return nil
		}
		fields := strings.Fields(strings.TrimSpace(p.reader.Text()))
		if len(fields) == 0 {
			continue
		}

		if done := p.dispatch(ctx, fields); done {
			return nil
		}
		if !s.Running() {
			p.renderGameOver()
			p.finishRun(ctx)
			return nil
		}
	}
}

// dispatch runs one player command. Returns true when the session should end.
func (p *playSession) dispatch(ctx context.Context, fields []string) bool {
	o := p.output
	s := p.state

	var err error
	switch fields[0] {
	case "quit", "q", "exit":
		return true
	case "help", "h":
		p.renderHelp()
	case "status":
		p.renderStatus()
	case "prices":
		p.renderPrices()
	case "news":
		p.renderNews()
	case "next", "n":
		err = p.eng.TriggerNextDay(s)
		if err == nil {
			if s.PendingEncounter != nil {
				p.renderEncounter()
			} else {
				p.afterDay(ctx)
			}
		}
	case "ok":
		err = p.eng.ConfirmEncounter(s)
		if err == nil && s.Running() {
			p.afterDay(ctx)
		}
	case "buy":
		var qty int
		if qty, err = argInt(fields, 2); err == nil {
			err = p.eng.Buy(s, strings.ToUpper(fields[1]), qty)
		}
	case "sell":
		var qty int
		if qty, err = argInt(fields, 2); err == nil {
			err = p.eng.Sell(s, strings.ToUpper(fields[1]), qty)
		}
	case "lev":
		var qty int
		var leverage float64
		if qty, err = argInt(fields, 2); err == nil {
			if leverage, err = argFloat(fields, 3); err == nil {
				err = p.eng.BuyWithLeverage(s, strings.ToUpper(fields[1]), qty, leverage)
			}
		}
	case "close":
		var idx int
		if idx, err = argInt(fields, 1); err == nil {
			err = p.eng.CloseLeveragedPosition(s, idx-1)
		}
	case "short":
		var qty int
		if qty, err = argInt(fields, 2); err == nil {
			err = p.eng.ShortSell(s, strings.ToUpper(fields[1]), qty)
		}
	case "cover":
		var idx int
		if idx, err = argInt(fields, 1); err == nil {
			err = p.eng.CoverShort(s, idx-1)
		}
	case "invest":
		var amount float64
		if amount, err = argFloat(fields, 1); err == nil {
			err = p.eng.InvestInStartup(s, amount)
		}
	case "pass":
		err = p.eng.DismissStartupOffer(s)
	case "life":
		switch {
		case len(fields) == 1:
			p.renderLifestyle()
		case fields[1] == "buy" && len(fields) > 2:
			err = p.eng.BuyLifestyle(s, fields[2])
		case fields[1] == "sell" && len(fields) > 2:
			err = p.eng.SellLifestyle(s, fields[2])
		default:
			o.Warning("usage: life | life buy <id> | life sell <id>")
		}
	default:
		o.Warning("Unknown command %q. Type 'help' for commands.", fields[0])
	}

	if err != nil {
		o.Error("%v", err)
	}
	return false
}

// afterDay renders the freshly advanced day and persists its snapshot.
func (p *playSession) afterDay(ctx context.Context) {
	p.renderDay()
	p.saveSnapshot(ctx)
	if !p.state.Running() {
		return
	}
	if p.state.PendingOffer != nil {
		p.renderOffer()
	}
}

func (p *playSession) renderHelp() {
	o := p.output
	o.Bold("Commands")
	o.Println("  next (n)              advance to the next day")
	o.Println("  status                cash, net worth, positions")
	o.Println("  prices                current asset prices")
	o.Println("  news                  today's headlines")
	o.Println("  buy <asset> <qty>     buy shares")
	o.Println("  sell <asset> <qty>    sell shares")
	o.Println("  lev <asset> <qty> <x> buy with leverage")
	o.Println("  close <#>             close leveraged position")
	o.Println("  short <asset> <qty>   open a short")
	o.Println("  cover <#>             cover a short")
	o.Println("  invest <amount>       accept the pending startup offer")
	o.Println("  pass                  dismiss the pending startup offer")
	o.Println("  life [buy|sell <id>]  lifestyle assets")
	o.Println("  ok                    acknowledge a pending encounter")
	o.Println("  quit (q)              leave the game")
}

func (p *playSession) renderDay() {
	o := p.output
	s := p.state

	o.Println()
	o.Bold("=== Day %d of %d ===", s.Day, s.Duration)
	p.renderNews()

	if s.MilestoneToday != nil {
		o.Box("MILESTONE", []string{
			fmt.Sprintf("Net worth crossed %s!", utils.FormatCompact(s.MilestoneToday.Threshold)),
		})
	}
	if nm := s.NearMissToday; nm != nil {
		switch nm.Kind {
		case models.NearMissMissedMoon, models.NearMissMissedGain:
			o.Warning("%s is up %s since you sold on day %d", nm.AssetID, utils.FormatPercent(nm.ChangePct), nm.SoldDay)
		default:
			o.Success("%s is down %s since you sold on day %d. Nice exit.", nm.AssetID, utils.FormatPercent(nm.ChangePct), nm.SoldDay)
		}
	}

	netWorth := p.eng.NetWorth(s)
	o.Printf("Cash %s   Net worth %s (%s)\n",
		utils.FormatUSD(s.Cash),
		o.BoldText(utils.FormatUSD(netWorth)),
		o.FormatPercent(p.eng.TotalChangePct(s)))
}

func (p *playSession) renderNews() {
	o := p.output
	if len(p.state.TodayNews) == 0 {
		o.Dim("Quiet day. No market-moving news.")
		return
	}
	for _, item := range p.state.TodayNews {
		switch item.Kind {
		case models.NewsRumor, models.NewsHint:
			o.Dim("  ~ %s", item.Headline)
		case models.NewsEncounter:
			o.Warning("  ! %s", item.Headline)
		default:
			o.Println("  *", item.Headline)
		}
	}
}

func (p *playSession) renderPrices() {
	o := p.output
	s := p.state

	table := NewTable(o, "ASSET", "PRICE", "CHANGE")
	for _, a := range p.eng.Catalog().Assets {
		table.AddRow(a.ID, utils.FormatUSD(s.Prices[a.ID]), o.FormatPercent(p.eng.PriceChangePct(s, a.ID)))
	}
	table.Render()
}

func (p *playSession) renderStatus() {
	o := p.output
	s := p.state

	o.Bold("Day %d of %d", s.Day, s.Duration)
	o.Printf("Cash:       %s\n", utils.FormatUSD(s.Cash))
	o.Printf("Net worth:  %s (%s)\n", utils.FormatUSD(p.eng.NetWorth(s)), o.FormatPercent(p.eng.TotalChangePct(s)))

	if len(s.Holdings) > 0 {
		o.Println()
		table := NewTable(o, "ASSET", "QTY", "VALUE")
		for _, a := range p.eng.Catalog().Assets {
			if qty := s.Holdings[a.ID]; qty > 0 {
				table.AddRow(a.ID, utils.FormatQuantity(qty), utils.FormatUSD(float64(qty)*s.Prices[a.ID]))
			}
		}
		table.Render()
	}

	for i, pos := range s.Leveraged {
		o.Printf("Lev #%d: %d %s @ %s (%.0fx), equity %s\n",
			i+1, pos.Quantity, pos.AssetID, utils.FormatUSD(pos.EntryPrice), pos.Leverage,
			o.FormatPnL(pos.Equity(s.Prices[pos.AssetID])))
	}
	for i, pos := range s.Shorts {
		o.Printf("Short #%d: %d %s @ %s, liability %s\n",
			i+1, pos.Quantity, pos.AssetID, utils.FormatUSD(pos.EntryPrice),
			utils.FormatUSD(pos.Liability(s.Prices[pos.AssetID])))
	}
	for _, inv := range s.Investments {
		o.Printf("Startup %s: %s invested, resolves around day %d\n",
			inv.StartupID, utils.FormatUSD(inv.Amount), inv.ResolveDay)
	}
	for _, item := range s.Lifestyle {
		o.Printf("Lifestyle %s: worth %s (paid %s)\n",
			item.AssetID, utils.FormatUSD(item.CurrentValue), utils.FormatUSD(item.PurchasePrice))
	}
}

func (p *playSession) renderLifestyle() {
	o := p.output
	table := NewTable(o, "ID", "NAME", "PRICE", "CATEGORY")
	for _, a := range p.eng.Catalog().Lifestyle {
		table.AddRow(a.ID, a.Name, utils.FormatUSD(a.BasePrice), string(a.Category))
	}
	table.Render()
}

func (p *playSession) renderOffer() {
	o := p.output
	startup, ok := p.eng.Catalog().StartupByID(p.state.PendingOffer.StartupID)
	if !ok {
		return
	}
	o.Println()
	o.Box("STARTUP OFFER", []string{
		startup.Name,
		startup.Pitch,
		fmt.Sprintf("Minimum stake: %s", utils.FormatUSD(startup.MinAmount)),
		"Type 'invest <amount>' to accept or 'pass' to decline.",
	})
}

func (p *playSession) renderEncounter() {
	o := p.output
	enc := p.state.PendingEncounter
	lines := []string{enc.Headline}
	if !enc.Terminal {
		lines = append(lines, fmt.Sprintf("Demand: %s", utils.FormatUSD(enc.Demand)))
	}
	lines = append(lines, "Type 'ok' to face it.")
	o.Println()
	o.Box("ENCOUNTER", lines)
}

func (p *playSession) renderGameOver() {
	o := p.output
	s := p.state
	netWorth := p.eng.NetWorth(s)

	o.Println()
	if s.Status == models.GameWon {
		o.Box("YOU MADE IT", []string{
			fmt.Sprintf("Survived %d days.", s.Duration),
			fmt.Sprintf("Final net worth: %s (%s)", utils.FormatUSD(netWorth), utils.FormatPercent(p.eng.TotalChangePct(s))),
		})
		return
	}

	o.Box("GAME OVER", []string{
		bankruptcyLine(s.Cause),
		fmt.Sprintf("Day %d. Final net worth: %s", s.Day, utils.FormatUSD(netWorth)),
	})
}

func bankruptcyLine(cause models.BankruptcyCause) string {
	switch cause {
	case models.CauseShortSqueeze:
		return "Squeezed out. Your shorts buried you."
	case models.CauseMargin:
		return "Margin called into oblivion."
	case models.CauseCatastrophic:
		return "Catastrophic wipeout. They will study this one."
	case models.CauseEncounter:
		return "The authorities took everything."
	default:
		return "You ran out of money."
	}
}

func (p *playSession) saveSnapshot(ctx context.Context) {
	if p.app.Store == nil {
		return
	}
	s := p.state
	headlines := make([]string, 0, len(s.TodayNews))
	for _, item := range s.TodayNews {
		headlines = append(headlines, item.Headline)
	}
	p.app.Store.SaveSnapshot(ctx, &models.DailySnapshot{
		GameID:    s.GameID,
		Day:       s.Day,
		Cash:      s.Cash,
		NetWorth:  p.eng.NetWorth(s),
		Portfolio: p.eng.PortfolioValue(s),
		Headlines: headlines,
	})
}

func (p *playSession) finishRun(ctx context.Context) {
	if p.app.Store == nil {
		return
	}
	s := p.state
	p.app.Store.FinishRun(ctx, s.GameID, s.Status, string(s.Cause), p.eng.NetWorth(s), s.Day)
}

func argInt(fields []string, idx int) (int, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("missing argument")
	}
	v, err := strconv.Atoi(fields[idx])
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", fields[idx])
	}
	return v, nil
}

func argFloat(fields []string, idx int) (float64, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("missing argument")
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", fields[idx])
	}
	return v, nil
}
