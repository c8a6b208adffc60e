package impl

import (
	"context"

	"farmgrid/internal/usecase"
)

const helpMessage = "📚 FarmGrid SMS Commands:\n\n" +
	"🔹 COLLECT farmer_id [ID] quantity [QTY] commodity_id [COMM_ID]\n" +
	"   Record produce collection\n\n" +
	"🔹 REGISTER_FARMER first_name [NAME] last_name [SURNAME] phone_number [PHONE] cooperative_id [COOP_ID]\n" +
	"   Register new farmer\n\n" +
	"🔹 STATUS [collection_id [ID]]\n" +
	"   Check your status or collection status\n\n" +
	"🔹 HELP\n" +
	"   Show this help message\n\n" +
	"Example:\nCOLLECT farmer_id 123 quantity 50.5 commodity_id 1"

// handleHelp replies with the static usage guide.
func (s *gatewayService) handleHelp(ctx context.Context, from string) *usecase.DispatchResult {
	s.send(ctx, from, helpMessage)

	return &usecase.DispatchResult{
		Success: true,
		Data: map[string]any{
			"help_sent": true,
		},
	}
}
