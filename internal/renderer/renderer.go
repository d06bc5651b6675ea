// Package renderer render tài liệu HTML từ template nhúng sẵn (embed).
// Render là pure function: cùng template + cùng data luôn cho cùng một chuỗi byte.
// Dùng html/template nên mọi dữ liệu interpolate đều được escape tự động.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Whointhefkisthatguy/trade-up/internal/common"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// TemplateInternalDealSheet là tên template deal sheet nội bộ cho sales.
const TemplateInternalDealSheet = "internal-deal-sheet"

// TemplateClientOffer là tên template trang offer gửi khách.
const TemplateClientOffer = "client-offer"

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"formatCurrency": FormatCurrency,
	}).ParseFS(templateFS, "templates/*.html.tmpl"),
)

// Render render template theo tên với data map. Template không tồn tại trả về lỗi.
func Render(name string, data map[string]interface{}) (string, error) {
	tmpl := templates.Lookup(name + ".html.tmpl")
	if tmpl == nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			fmt.Sprintf("Không tìm thấy template %s", name), common.StatusInternalServerError, nil)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			fmt.Sprintf("Lỗi render template %s", name), common.StatusInternalServerError, err.Error())
	}
	return buf.String(), nil
}

// FormatCurrency định dạng số tiền USD: $12,345.67. Số âm: -$500.00.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(parts[1])
	return b.String()
}
