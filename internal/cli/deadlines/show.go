package deadlines

import (
	"fmt"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/deadline"
)

// ShowCmd renders the countdown block once to stdout, the same text the
// widget refreshes every minute.
type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Records.Load()
	if err != nil {
		// The formatter is total over malformed records, but an
		// undecodable document has no records to format at all.
		fmt.Println(deadline.BadDataText)
		return nil
	}
	fmt.Println(deadline.Format(records, ctx.Clock()))
	return nil
}
