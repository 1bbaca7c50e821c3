package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eppwiresh/eppwire/internal/client"
	"github.com/eppwiresh/eppwire/internal/commands"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

// resData unwraps the payload of a successful response. Registries should
// always attach <resData> to these commands, but a missing payload must not
// panic the CLI.
func resData[D any](resp *protocol.Response[D, protocol.NoExtension]) (*D, error) {
	if resp.ResData == nil {
		return nil, fmt.Errorf("registry response carried no resData (svTRID %s)", resp.TrIDs.SvTRID)
	}
	return resp.ResData, nil
}

// ---------------------------------------------------------------------------
// checkCmd
// ---------------------------------------------------------------------------

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain|host|contact> <name>...",
		Short: "Check availability of domains, hosts, or contacts",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, names := args[0], args[1:]

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			switch kind {
			case "domain":
				resp, err := client.Transact[commands.DomainCheckData, protocol.NoExtension](c, commands.NewDomainCheck(names), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				for _, item := range data.ChkData.Items {
					printAvailability(item.Name.Name, item.Name.Available, item.Reason)
				}
			case "host":
				resp, err := client.Transact[commands.HostCheckData, protocol.NoExtension](c, commands.NewHostCheck(names), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				for _, item := range data.ChkData.Items {
					printAvailability(item.Name.Name, item.Name.Available, item.Reason)
				}
			case "contact":
				resp, err := client.Transact[commands.ContactCheckData, protocol.NoExtension](c, commands.NewContactCheck(names), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				for _, item := range data.ChkData.Items {
					printAvailability(item.ID.ID, item.ID.Available, item.Reason)
				}
			default:
				return fmt.Errorf("unknown object type %q (want domain, host, or contact)", kind)
			}
			return nil
		},
	}
}

func printAvailability(name string, available bool, reason string) {
	if available {
		fmt.Printf("%-40s available\n", name)
		return
	}
	if reason != "" {
		fmt.Printf("%-40s taken (%s)\n", name, reason)
		return
	}
	fmt.Printf("%-40s taken\n", name)
}

// ---------------------------------------------------------------------------
// infoCmd
// ---------------------------------------------------------------------------

func infoCmd() *cobra.Command {
	var authPw string

	cmd := &cobra.Command{
		Use:   "info <domain|host|contact> <name>",
		Short: "Query full details of one object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], args[1]

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			switch kind {
			case "domain":
				resp, err := client.Transact[commands.DomainInfoData, protocol.NoExtension](c, commands.NewDomainInfo(name, authPw), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				d := data.InfData
				fmt.Printf("Domain:      %s\n", d.Name)
				fmt.Printf("ROID:        %s\n", d.ROID)
				for _, s := range d.Statuses {
					fmt.Printf("Status:      %s\n", s.Status)
				}
				if d.Registrant != "" {
					fmt.Printf("Registrant:  %s\n", d.Registrant)
				}
				for _, ct := range d.Contacts {
					fmt.Printf("Contact:     %s (%s)\n", ct.ID, ct.Type)
				}
				if len(d.Nameservers) > 0 {
					fmt.Printf("Nameservers: %s\n", strings.Join(d.Nameservers, ", "))
				}
				fmt.Printf("Sponsor:     %s\n", d.ClID)
				fmt.Printf("Created:     %s by %s\n", d.CreateDate, d.CrID)
				if d.UpdateDate != "" {
					fmt.Printf("Updated:     %s\n", d.UpdateDate)
				}
				fmt.Printf("Expires:     %s\n", d.ExpiryDate)
				if d.AuthInfo != nil {
					fmt.Printf("AuthInfo:    %s\n", d.AuthInfo.Password)
				}
			case "host":
				resp, err := client.Transact[commands.HostInfoData, protocol.NoExtension](c, commands.NewHostInfo(name), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				h := data.InfData
				fmt.Printf("Host:     %s\n", h.Name)
				fmt.Printf("ROID:     %s\n", h.ROID)
				for _, s := range h.Statuses {
					fmt.Printf("Status:   %s\n", s.Status)
				}
				for _, a := range h.Addresses {
					fmt.Printf("Address:  %s (%s)\n", a.Address, a.IP)
				}
				fmt.Printf("Sponsor:  %s\n", h.ClID)
				fmt.Printf("Created:  %s by %s\n", h.CreateDate, h.CrID)
			case "contact":
				resp, err := client.Transact[commands.ContactInfoData, protocol.NoExtension](c, commands.NewContactInfo(name, authPw), nil, clTRID(c))
				if err != nil {
					return err
				}
				data, err := resData(resp)
				if err != nil {
					return err
				}
				ct := data.InfData
				fmt.Printf("Contact:  %s\n", ct.ID)
				fmt.Printf("ROID:     %s\n", ct.ROID)
				for _, pi := range ct.PostalInfo {
					fmt.Printf("Name:     %s (%s)\n", pi.Name, pi.Type)
					if pi.Org != "" {
						fmt.Printf("Org:      %s\n", pi.Org)
					}
				}
				if ct.Email != "" {
					fmt.Printf("Email:    %s\n", ct.Email)
				}
				fmt.Printf("Sponsor:  %s\n", ct.ClID)
				fmt.Printf("Created:  %s by %s\n", ct.CreateDate, ct.CrID)
			default:
				return fmt.Errorf("unknown object type %q (want domain, host, or contact)", kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&authPw, "auth", "", "Authorization password (reveals authInfo for domains and contacts)")
	return cmd
}

// ---------------------------------------------------------------------------
// createCmd
// ---------------------------------------------------------------------------

func createCmd() *cobra.Command {
	var (
		registrant string
		ns         []string
		years      int
		authPw     string
	)

	cmd := &cobra.Command{
		Use:   "create domain <name>",
		Short: "Register a domain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "domain" {
				return fmt.Errorf("only domain create is wired here; use the library for host and contact objects")
			}
			name := args[1]

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			params := commands.DomainCreateParams{
				Registrant: registrant,
				AuthPw:     authPw,
			}
			if years > 0 {
				params.Period = commands.Years(years)
			}
			if len(ns) > 0 {
				params.Nameservers = ns
			}

			resp, err := client.Transact[commands.DomainCreateData, protocol.NoExtension](c, commands.NewDomainCreate(name, params), nil, clTRID(c))
			if err != nil {
				return err
			}
			data, err := resData(resp)
			if err != nil {
				return err
			}
			d := data.CreData
			fmt.Printf("Created %s, expires %s (svTRID %s)\n", d.Name, d.ExpiryDate, resp.TrIDs.SvTRID)
			return nil
		},
	}
	cmd.Flags().StringVar(&registrant, "registrant", "", "Registrant contact ID")
	cmd.Flags().StringSliceVar(&ns, "ns", nil, "Delegated nameserver (can be repeated)")
	cmd.Flags().IntVar(&years, "years", 0, "Registration period in years (registry default when omitted)")
	cmd.Flags().StringVar(&authPw, "auth", "", "Authorization password for the new domain")
	return cmd
}

// ---------------------------------------------------------------------------
// deleteCmd
// ---------------------------------------------------------------------------

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain|host|contact> <name>",
		Short: "Delete an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], args[1]

			var delCmd protocol.Command
			switch kind {
			case "domain":
				delCmd = commands.NewDomainDelete(name)
			case "host":
				delCmd = commands.NewHostDelete(name)
			case "contact":
				delCmd = commands.NewContactDelete(name)
			default:
				return fmt.Errorf("unknown object type %q (want domain, host, or contact)", kind)
			}

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			resp, err := client.Transact[protocol.NoData, protocol.NoExtension](c, delCmd, nil, clTRID(c))
			if err != nil {
				return err
			}
			fmt.Printf("%s (svTRID %s)\n", resp.Result.Message, resp.TrIDs.SvTRID)
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// renewCmd
// ---------------------------------------------------------------------------

func renewCmd() *cobra.Command {
	var (
		expiry string
		years  int
	)

	cmd := &cobra.Command{
		Use:   "renew <domain>",
		Short: "Extend a domain registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiry == "" {
				return fmt.Errorf("--expires is required (current expiry date, YYYY-MM-DD)")
			}

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			var period *commands.Period
			if years > 0 {
				period = commands.Years(years)
			}
			resp, err := client.Transact[commands.DomainRenewData, protocol.NoExtension](c, commands.NewDomainRenew(args[0], expiry, period), nil, clTRID(c))
			if err != nil {
				return err
			}
			data, err := resData(resp)
			if err != nil {
				return err
			}
			d := data.RenData
			fmt.Printf("Renewed %s, now expires %s\n", d.Name, d.ExpiryDate)
			return nil
		},
	}
	cmd.Flags().StringVar(&expiry, "expires", "", "Current expiry date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&years, "years", 0, "Renewal period in years (registry default when omitted)")
	return cmd
}

// ---------------------------------------------------------------------------
// transferCmd
// ---------------------------------------------------------------------------

func transferCmd() *cobra.Command {
	var (
		authPw string
		years  int
	)

	cmd := &cobra.Command{
		Use:   "transfer <request|query|approve|reject|cancel> <domain>",
		Short: "Manage a domain transfer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, name := args[0], args[1]
			switch op {
			case commands.TransferRequest, commands.TransferQuery, commands.TransferApprove, commands.TransferReject, commands.TransferCancel:
			default:
				return fmt.Errorf("unknown transfer op %q", op)
			}

			c, closer, err := openSession()
			if err != nil {
				return err
			}
			defer closer()

			var period *commands.Period
			if years > 0 {
				period = commands.Years(years)
			}
			resp, err := client.Transact[commands.DomainTransferData, protocol.NoExtension](c, commands.NewDomainTransfer(op, name, period, authPw), nil, clTRID(c))
			if err != nil {
				return err
			}
			data, err := resData(resp)
			if err != nil {
				return err
			}
			d := data.TrnData
			fmt.Printf("Transfer %s: %s\n", d.Name, d.TransferStatus)
			fmt.Printf("  requested %s by %s\n", d.RequestDate, d.RequestingID)
			if d.ActingDate != "" {
				fmt.Printf("  acted on  %s by %s\n", d.ActingDate, d.ActingID)
			}
			if d.ExpiryDate != "" {
				fmt.Printf("  expires   %s\n", d.ExpiryDate)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&authPw, "auth", "", "Authorization password of the domain")
	cmd.Flags().IntVar(&years, "years", 0, "Extension period granted by the transfer")
	return cmd
}
