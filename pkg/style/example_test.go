package style_test

import (
	"errors"
	"fmt"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
	"github.com/go-drift/badgeview/pkg/style"
)

func ExampleParse() {
	doc, err := style.Parse([]byte(`
version: "1"
backgroundColor: "#0A84FF"
cornerRadius: 4
width: {max: none}
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	b := badge.New(graphics.RectFromLTWH(0, 0, 0, 24), badge.WithParent(badge.ParentOfSize(100, 100)))
	if err := doc.Apply(b); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.BadgeBackgroundColor().Hex(), b.CornerRadius(), b.IsCornerRadiusAuto())

	_, err = style.Parse([]byte(`version: "2"`))
	fmt.Println(errors.Is(err, style.ErrUnsupportedVersion))
	// Output:
	// #0A84FF 4 false
	// true
}
