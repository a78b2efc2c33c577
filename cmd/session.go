package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	machinerender "github.com/tyler-dunkel/vendo/internal/adapters/render/machine"
	"github.com/tyler-dunkel/vendo/internal/application"
	"github.com/tyler-dunkel/vendo/internal/domain"
)

func newSessionCmd(app *app) *cobra.Command {
	var (
		startingCash  int
		adminPassword string
		catalogPath   string
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive vending session",
		Long:  "session stocks a machine from the configured catalog and reads commands from stdin until EOF or 'quit'. Supply --admin-password to act as the machine's admin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			machine := domain.NewMachine()
			if err := stockMachine(cmd, app, machine, catalogPath); err != nil {
				return err
			}

			actor := application.NewActor(application.ActorDetails{Cash: startingCash}, adminPassword, app.verifier, app.clock)
			admin, isAdmin := actor.(*application.Admin)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vendo session, role: %s, cash: %s\n", actor.Role(), domain.FormatUSD(actor.Cash()))
			fmt.Fprintln(out, "type 'help' for commands")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}

				switch fields[0] {
				case "quit", "exit":
					fmt.Fprintln(out, "bye")
					return nil
				case "help":
					printSessionHelp(out, isAdmin)
				case "coin":
					runCoin(out, actor, machine, fields[1:])
				case "price":
					runPrice(out, actor, machine, fields[1:])
				case "buy":
					runBuy(out, actor, machine, fields[1:])
				case "wallet":
					runWallet(out, actor)
				case "status":
					fmt.Fprintln(out, machinerender.Render(machine, machinerender.RenderOptions{ShowDrawer: isAdmin}))
				case "history":
					runHistory(out, actor)
				case "load":
					if requireAdmin(out, isAdmin) {
						runLoad(cmd, app, out, admin, machine, fields[1:])
					}
				case "setprice":
					if requireAdmin(out, isAdmin) {
						runSetPrice(out, admin, machine, fields[1:])
					}
				case "collect":
					if requireAdmin(out, isAdmin) {
						fmt.Fprintf(out, "collected %s\n", domain.FormatUSD(admin.GetMoneyFromMachine(machine)))
					}
				case "count":
					if requireAdmin(out, isAdmin) {
						fmt.Fprintf(out, "cash: %s\n", domain.FormatUSD(admin.CountMoney()))
					}
				default:
					fmt.Fprintf(out, "unknown command %q (try 'help')\n", fields[0])
				}
			}

			return scanner.Err()
		},
	}

	cmd.Flags().IntVar(&startingCash, "cash", 500, "Starting cash in cents")
	cmd.Flags().StringVar(&adminPassword, "admin-password", envOrDefault("VENDO_ADMIN_PASSWORD", ""), "Admin credential; wrong or missing degrades to a regular user")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file to stock the machine with (default from config)")

	return cmd
}

// stockMachine preloads the machine from the catalog source. A missing
// default catalog just means an empty machine; an explicitly requested one
// has to exist.
func stockMachine(cmd *cobra.Command, app *app, machine *domain.VendingMachine, catalogPath string) error {
	source, err := app.catalogSource(catalogPath)
	if err != nil {
		if catalogPath != "" {
			return err
		}
		return nil
	}

	entries, err := source.Load(cmd.Context())
	if err != nil {
		if catalogPath != "" {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	}

	machine.LoadCatalog(entries)
	return nil
}

func requireAdmin(out io.Writer, isAdmin bool) bool {
	if !isAdmin {
		fmt.Fprintln(out, "admin credentials required")
	}
	return isAdmin
}

func runCoin(out io.Writer, actor application.Actor, machine *domain.VendingMachine, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: coin <cents>")
		return
	}

	amount, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "please enter a valid coin amount")
		return
	}

	actor.AddCoinToMachine(machine, amount)
	fmt.Fprintf(out, "balance: %s\n", domain.FormatUSD(machine.TransactionBalance()))
}

func runPrice(out io.Writer, actor application.Actor, machine *domain.VendingMachine, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: price <name>")
		return
	}

	name := strings.Join(args, " ")
	product, ok := actor.CheckCompartmentPrice(machine, name)
	if !ok {
		fmt.Fprintf(out, "no product named %q\n", name)
		return
	}

	fmt.Fprintf(out, "%s costs %s\n", product.Name, domain.FormatUSD(product.Price))
}

func runBuy(out io.Writer, actor application.Actor, machine *domain.VendingMachine, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: buy <slot>")
		return
	}

	slot, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "please enter a valid slot number")
		return
	}

	msg, ok := actor.BuyProduct(machine, slot)
	if !ok {
		fmt.Fprintln(out, msg)
		return
	}

	products := actor.Products()
	receipt := domain.Receipt{Product: &products[len(products)-1]}
	fmt.Fprintln(out, machinerender.RenderReceipt(receipt))
	fmt.Fprintf(out, "cash: %s\n", domain.FormatUSD(actor.Cash()))
}

func runWallet(out io.Writer, actor application.Actor) {
	fmt.Fprintf(out, "cash: %s\n", domain.FormatUSD(actor.Cash()))

	products := actor.Products()
	if len(products) == 0 {
		fmt.Fprintln(out, "products: none")
		return
	}

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}
	fmt.Fprintf(out, "products: %s\n", strings.Join(names, ", "))
}

func runHistory(out io.Writer, actor application.Actor) {
	history := actor.History()
	if len(history) == 0 {
		fmt.Fprintln(out, "no actions yet")
		return
	}

	for _, entry := range history {
		fmt.Fprintf(out, "%s  %s\n", entry.At.Format(time.RFC3339), entry.Action)
	}
}

func runLoad(cmd *cobra.Command, app *app, out io.Writer, admin *application.Admin, machine *domain.VendingMachine, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: load <file>")
		return
	}

	source, err := app.catalogSource(args[0])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	entries, err := source.Load(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	admin.LoadProducts(machine, entries)
	fmt.Fprintf(out, "loaded %d catalog entries\n", len(entries))
}

func runSetPrice(out io.Writer, admin *application.Admin, machine *domain.VendingMachine, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: setprice <slots> <cents>, e.g. setprice 0,2 85")
		return
	}

	slots, err := parseSlots(args[0])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	price, err := strconv.Atoi(args[1])
	if err != nil || price < 0 {
		fmt.Fprintln(out, "please enter a valid price in cents")
		return
	}

	admin.SetCompartmentPrice(machine, slots, price)
	fmt.Fprintf(out, "set %d slot(s) to %s\n", len(slots), domain.FormatUSD(price))
}

func parseSlots(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	slots := make([]int, 0, len(parts))
	for _, part := range parts {
		slot, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || slot < 0 {
			return nil, fmt.Errorf("invalid slot list %q", raw)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func printSessionHelp(out io.Writer, isAdmin bool) {
	fmt.Fprint(out, `commands:
  coin <cents>     insert a coin (50, 25, 10, 5, 1)
  price <name>     check a product's price
  buy <slot>       press the button for a slot
  status           show the machine
  wallet           show your cash and products
  history          show your audit history
  help             this message
  quit             leave the session
`)

	if isAdmin {
		fmt.Fprint(out, `admin commands:
  load <file>              stock the machine from a catalog file
  setprice <slots> <cents> reprice slots, e.g. setprice 0,2 85
  collect                  sweep the machine's money into your pocket
  count                    count your cash (audited)
`)
	}
}
