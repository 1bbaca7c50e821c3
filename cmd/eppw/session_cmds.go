package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eppwiresh/eppwire/internal/client"
	"github.com/eppwiresh/eppwire/internal/commands"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

// ---------------------------------------------------------------------------
// greetingCmd
// ---------------------------------------------------------------------------

func greetingCmd() *cobra.Command {
	var rawXML bool

	cmd := &cobra.Command{
		Use:   "greeting",
		Short: "Connect and print the server greeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dialClient()
			if err != nil {
				return err
			}
			defer c.Shutdown()

			if rawXML {
				fmt.Println(c.XMLGreeting())
				return nil
			}
			g, err := c.Greeting()
			if err != nil {
				return err
			}
			printGreeting(g)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rawXML, "xml", false, "Print the greeting document verbatim")
	return cmd
}

// ---------------------------------------------------------------------------
// helloCmd
// ---------------------------------------------------------------------------

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Send <hello> and print the fresh greeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dialClient()
			if err != nil {
				return err
			}
			defer c.Shutdown()

			g, err := c.Hello()
			if err != nil {
				return err
			}
			printGreeting(g)
			return nil
		},
	}
}

func printGreeting(g *protocol.Greeting) {
	fmt.Printf("Server:     %s\n", g.ServiceID)
	fmt.Printf("Date:       %s\n", g.ServiceDate)
	fmt.Printf("Versions:   %s\n", strings.Join(g.ServiceMenu.Versions, ", "))
	fmt.Printf("Languages:  %s\n", strings.Join(g.ServiceMenu.Languages, ", "))
	fmt.Println("Objects:")
	for _, uri := range g.ServiceMenu.Objects {
		fmt.Printf("  %s\n", uri)
	}
	if len(g.ServiceMenu.Extensions) > 0 {
		fmt.Println("Extensions:")
		for _, uri := range g.ServiceMenu.Extensions {
			fmt.Printf("  %s\n", uri)
		}
	}
}

// ---------------------------------------------------------------------------
// pollCmd
// ---------------------------------------------------------------------------

func pollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poll [ack <msgID>]",
		Short: "Request the first queued service message, or acknowledge one",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var op protocol.Command
			switch {
			case len(args) == 0:
				op = commands.NewPollRequest()
			case args[0] == "ack" && len(args) == 2:
				op = commands.NewPollAck(args[1])
			default:
				return fmt.Errorf("usage: poll, or poll ack <msgID>")
			}

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			resp, err := client.Transact[commands.PollData, protocol.NoExtension](c, op, nil, clTRID(c))
			if err != nil {
				return err
			}

			if resp.Result.Code == protocol.CommandCompletedNoMessages {
				fmt.Println("Queue is empty.")
				return nil
			}
			if q := resp.MessageQueue; q != nil {
				fmt.Printf("Message %s (%d queued), enqueued %s\n", q.ID, q.Count, q.Date)
				if q.Text != "" {
					fmt.Printf("  %s\n", q.Text)
				}
			}
			if resp.ResData != nil && resp.ResData.Raw != "" {
				fmt.Println(resp.ResData.Raw)
			}
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// rawCmd
// ---------------------------------------------------------------------------

func rawCmd() *cobra.Command {
	var noLogin bool

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Send an XML document read from stdin and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			var c *client.Client
			if noLogin {
				c, err = dialClient()
				if err != nil {
					return err
				}
				defer c.Shutdown()
			} else {
				var closer func()
				c, closer, err = openSession()
				if err != nil {
					return err
				}
				defer closer()
			}

			reply, err := c.TransactXML(string(doc))
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noLogin, "no-login", false, "Send without logging in first (for hand-built session commands)")
	return cmd
}
