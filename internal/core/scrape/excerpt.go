package scrape

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// TruncationNote 超過長度上限時附在摘錄尾端的標記
const TruncationNote = "\n[...content truncated due to length...]"

// 跳過的非內容元素 class（導覽、參考文獻、模板等）
var skipClasses = []string{
	"mw-references-columns", "reflist", "navbox", "toc",
	"authority-control", "hatnote", "metadata", "printfooter",
	"portalbox", "noprint", "sister-project",
}

var (
	wikiRefPattern   = regexp.MustCompile(`\[.*?\]`)
	multiNewlinePattern = regexp.MustCompile(`\n{2,}`)
)

// hasSkippedClass 元素是否帶有任一非內容 class
func hasSkippedClass(sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	if class == "" {
		return false
	}
	classes := strings.Fields(class)
	for _, cls := range skipClasses {
		for _, have := range classes {
			if have == cls {
				return true
			}
		}
	}
	return false
}

// Excerpt 把來源頁面剁成有界的純文字摘錄
// 優先取 infobox，再掃主文區的區塊元素；標題加上 "## " 前綴給抽取服務
// 一點結構提示；移除 wiki 參照（[1]）、壓縮多餘空行，最後以 maxLength 截斷
func Excerpt(html string, maxLength int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	var sections []string

	// Infobox 通常帶著最完整的原料表，逐格取文字避免內容黏成一團
	if infobox := doc.Find("table.infobox").First(); infobox.Length() > 0 {
		var cells []string
		infobox.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if text := strings.TrimSpace(cell.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) > 0 {
			sections = append(sections, "Infobox Content:\n"+strings.Join(cells, "\n"))
		}
	}

	// 主文區的區塊元素
	if main := doc.Find("div.mw-parser-output").First(); main.Length() > 0 {
		var blocks []string
		main.Find("p, ul, ol, h2, h3, h4, h5, h6, div").Each(func(_ int, sel *goquery.Selection) {
			if hasSkippedClass(sel) {
				return
			}
			if goquery.NodeName(sel) == "div" {
				if role, _ := sel.Attr("role"); role == "navigation" {
					return
				}
				if id, _ := sel.Attr("id"); id == "mw-content-text" || id == "siteSub" || id == "jump-to-nav" {
					return
				}
			}

			switch goquery.NodeName(sel) {
			case "h2", "h3", "h4", "h5", "h6":
				if text := strings.TrimSpace(sel.Text()); text != "" {
					blocks = append(blocks, "## "+text)
				}
			case "ul", "ol":
				// 逐項取文字，清單項目之間以換行分隔
				var items []string
				sel.Find("li").Each(func(_ int, li *goquery.Selection) {
					if text := strings.TrimSpace(li.Text()); text != "" {
						items = append(items, text)
					}
				})
				if len(items) > 0 {
					blocks = append(blocks, strings.Join(items, "\n"))
				}
			default:
				if text := strings.TrimSpace(sel.Text()); text != "" {
					blocks = append(blocks, text)
				}
			}
		})
		if len(blocks) > 0 {
			sections = append(sections, "Main article content:\n"+strings.Join(blocks, "\n\n"))
		}
	}

	fullText := strings.Join(sections, "\n\n")
	fullText = wikiRefPattern.ReplaceAllString(fullText, "")
	fullText = multiNewlinePattern.ReplaceAllString(fullText, "\n\n")
	fullText = strings.TrimSpace(fullText)

	if maxLength > 0 && len(fullText) > maxLength {
		// 往前退到 rune 邊界，避免截斷出壞字元
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(fullText[cut]) {
			cut--
		}
		fullText = fullText[:cut] + TruncationNote
	}
	return fullText, nil
}
