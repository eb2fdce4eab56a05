package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/carquery/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API as normalized JSON over HTTP",
		Long: `Run an HTTP server that forwards requests to the CarQuery API and
answers with normalized camelCase JSON.

Routes:
  GET /years
  GET /makes?year=&sold_in_us=
  GET /makes/{make}/models?year=&sold_in_us=&body=
  GET /trims?<filters>
  GET /models/{id}
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return server.New(client, c.Logger).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr, :8080)")
	return cmd
}
