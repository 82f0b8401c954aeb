package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sales-keeper/internal/adapter"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

const usage = `usage: go-sales-client [flags] <command> [args]

commands:
  version
  register -login L -password P [-name N]
  login -login L -password P
  customers list [-limit N] [-offset N]
  customers get <id>
  customers create (-data JSON | -file PATH)
  customers update <id> (-data JSON | -file PATH)
  payment-methods list <customer-id>
  payment-methods get <id>
  payment-methods create <customer-id> (-data JSON | -file PATH)
  payment-methods update <id> (-data JSON | -file PATH)
`

type command func(ctx context.Context, args []string) error

// App dispatches one command line to the server adapter.
type App struct {
	adapter adapter.ServerAdapter
	in      io.Reader
	out     io.Writer

	logger *logger.Logger
}

// NewApp constructs an [App] printing results to out. A "-file -" argument
// reads the record from in.
func NewApp(serverAdapter adapter.ServerAdapter, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("client app: nil server adapter")
	}
	return &App{adapter: serverAdapter, in: in, out: out, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(a.out, usage)
		return ErrNoCommand
	}

	commands := map[string]command{
		"version":         a.version,
		"register":        a.register,
		"login":           a.login,
		"customers":       a.customers,
		"payment-methods": a.paymentMethods,
	}

	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" {
		_, err := io.WriteString(a.out, usage)
		return err
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd(ctx, rest)
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.GetServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	return a.authenticate(ctx, "register", args, a.adapter.Register)
}

func (a *App) login(ctx context.Context, args []string) error {
	return a.authenticate(ctx, "login", args, a.adapter.Login)
}

// authenticate prints the issued token next to the user, so the caller can
// export it as CLIENT_TOKEN for later runs.
func (a *App) authenticate(ctx context.Context, name string, args []string,
	do func(context.Context, models.User) (models.User, error)) error {
	var user models.User

	fs := newFlagSet(name)
	fs.StringVar(&user.Login, "login", "", "Employee login")
	fs.StringVar(&user.Password, "password", "", "Employee password")
	if name == "register" {
		fs.StringVar(&user.Name, "name", "", "Display name")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if user.Login == "" || user.Password == "" {
		return fmt.Errorf("%s: %w: -login and -password", name, ErrMissingArgument)
	}

	authenticated, err := do(ctx, user)
	if err != nil {
		return err
	}

	return a.print(struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}{Token: a.adapter.Token(), User: authenticated})
}

func (a *App) customers(ctx context.Context, args []string) error {
	return a.dispatch(ctx, "customers", args, map[string]command{
		"list":   a.listCustomers,
		"get":    a.getCustomer,
		"create": a.createCustomer,
		"update": a.updateCustomer,
	})
}

func (a *App) paymentMethods(ctx context.Context, args []string) error {
	return a.dispatch(ctx, "payment-methods", args, map[string]command{
		"list":   a.listPaymentMethods,
		"get":    a.getPaymentMethod,
		"create": a.createPaymentMethod,
		"update": a.updatePaymentMethod,
	})
}

func (a *App) dispatch(ctx context.Context, group string, args []string, subcommands map[string]command) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: %w: subcommand", group, ErrMissingArgument)
	}
	cmd, ok := subcommands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, group+" "+args[0])
	}
	return cmd(ctx, args[1:])
}

func (a *App) listCustomers(ctx context.Context, args []string) error {
	var opts models.ListOptions

	fs := newFlagSet("customers list")
	fs.Uint64Var(&opts.Limit, "limit", 0, "Page size")
	fs.Uint64Var(&opts.Offset, "offset", 0, "Rows to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customers, err := a.adapter.ListCustomers(ctx, opts)
	if err != nil {
		return err
	}
	return a.printList(customers)
}

func (a *App) getCustomer(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	customer, err := a.adapter.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	return a.print(customer)
}

func (a *App) createCustomer(ctx context.Context, args []string) error {
	var customer models.Customer
	if err := a.readRecord("customers create", args, &customer); err != nil {
		return err
	}

	created, err := a.adapter.CreateCustomer(ctx, customer)
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) updateCustomer(ctx context.Context, args []string) error {
	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	var update models.CustomerUpdate
	if err = a.readRecord("customers update", rest, &update); err != nil {
		return err
	}
	update.ID = id

	updated, err := a.adapter.UpdateCustomer(ctx, update)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) listPaymentMethods(ctx context.Context, args []string) error {
	customerID, _, err := parseID(args)
	if err != nil {
		return err
	}

	methods, err := a.adapter.ListCustomerPaymentMethods(ctx, customerID)
	if err != nil {
		return err
	}
	return a.printList(methods)
}

func (a *App) getPaymentMethod(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	method, err := a.adapter.GetPaymentMethod(ctx, id)
	if err != nil {
		return err
	}
	return a.print(method)
}

func (a *App) createPaymentMethod(ctx context.Context, args []string) error {
	customerID, rest, err := parseID(args)
	if err != nil {
		return err
	}

	var method models.PaymentMethod
	if err = a.readRecord("payment-methods create", rest, &method); err != nil {
		return err
	}
	method.CustomerID = customerID

	created, err := a.adapter.CreatePaymentMethod(ctx, method)
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) updatePaymentMethod(ctx context.Context, args []string) error {
	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	var update models.PaymentMethodUpdate
	if err = a.readRecord("payment-methods update", rest, &update); err != nil {
		return err
	}
	update.ID = id

	updated, err := a.adapter.UpdatePaymentMethod(ctx, update)
	if err != nil {
		return err
	}
	return a.print(updated)
}

// readRecord decodes the JSON given with -data or -file into dst. Unknown
// fields are rejected so a typo does not silently drop a value.
func (a *App) readRecord(name string, args []string, dst any) error {
	var data, file string

	fs := newFlagSet(name)
	fs.StringVar(&data, "data", "", "Record as JSON")
	fs.StringVar(&file, "file", "", "Path of a JSON file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var src io.Reader
	switch {
	case data != "":
		src = strings.NewReader(data)
	case file == "-":
		src = a.in
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		defer f.Close()
		src = f
	default:
		return fmt.Errorf("%s: %w", name, ErrNoData)
	}

	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%s: decode record: %w", name, err)
	}
	return nil
}

func (a *App) printList(list []models.Projection) error {
	if list == nil {
		list = []models.Projection{}
	}
	return a.print(list)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID takes the leading positional id off args.
func parseID(args []string) (int64, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, nil, fmt.Errorf("%w: id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}
	return id, args[1:], nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
