package letters

import (
	"strings"
	"text/template"
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

// renderContext builds the placeholder map a template is executed against.
// Missing-key execution is an error so a typo in a template surfaces at
// generation time instead of issuing a letter with a hole in it.
func renderContext(member *models.Member, now time.Time) map[string]any {
	ctx := map[string]any{
		"FullName":         member.FullName,
		"MemberID":         member.MemberID,
		"Gender":           member.Gender,
		"FamilyName":       member.Family.FamilyName,
		"SectorName":       member.CurrentSector.Name,
		"Age":              member.Age(now),
		"DateOfBirth":      member.DateOfBirth.Format(constants.DateOnlyFormat),
		"PlaceOfBirth":     member.PlaceOfBirth,
		"MembershipStatus": member.MembershipStatus,
		"Today":            now.Format(constants.DateOnlyFormat),
		"BaptismDate":      "",
		"SidiDate":         "",
		"MarriageDate":     "",
	}
	if member.BaptismDate != nil {
		ctx["BaptismDate"] = member.BaptismDate.Format(constants.DateOnlyFormat)
	}
	if member.SidiDate != nil {
		ctx["SidiDate"] = member.SidiDate.Format(constants.DateOnlyFormat)
	}
	if member.MarriageDate != nil {
		ctx["MarriageDate"] = member.MarriageDate.Format(constants.DateOnlyFormat)
	}
	return ctx
}

// renderTemplate executes one template source against the member context.
// Parse and execution failures both come back as validation errors since
// they are caused by the template text, not the system.
func renderTemplate(name, source string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
	if err != nil {
		return "", apperrors.NewInvalidRequestError("template does not parse: "+err.Error(), err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", apperrors.NewInvalidRequestError("template failed to render: "+err.Error(), err)
	}

	return out.String(), nil
}
