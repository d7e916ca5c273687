package bank

import "github.com/aretw0/migkairl/pkg/domain"

// Notice is a generic screen showing fixed lines and a way home.
type Notice struct {
	Lines []string
}

func (n *Notice) Render() domain.View {
	return domain.View{
		Lines:   append([]string(nil), n.Lines...),
		Actions: []domain.Action{domain.HomeAction()},
	}
}

// KaiAlone is shared by every answer of the "completely and uterly alone" question.
var KaiAlone = &Notice{Lines: []string{
	"Give Kai 5 drinks to help dull his need for companionship.",
}}
