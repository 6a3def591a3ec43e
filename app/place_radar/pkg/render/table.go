package render

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

// ReviewColumns 评论表的列
var ReviewColumns = []string{"Source", "Review", "Entity", "Sentiment"}

// ReviewRow 评论表中的一行
type ReviewRow struct {
	Source    string
	Review    string
	Entity    string
	Sentiment string
}

// ReviewCell 评论正文加评分，例如 "Great (Rating: 5)"
func ReviewCell(r model.Review) string {
	return fmt.Sprintf("%s (Rating: %s)", r.Text, ratingText(r.Rating))
}

// ReviewRows 先按实体顺序、再按实体内评论顺序展开所有评论
func ReviewRows(entities []model.Entity) []ReviewRow {
	var rows []ReviewRow
	for _, e := range entities {
		for _, r := range e.Reviews {
			rows = append(rows, ReviewRow{
				Source:    r.Source,
				Review:    ReviewCell(r),
				Entity:    e.Name,
				Sentiment: r.Sentiment,
			})
		}
	}
	return rows
}

// ReviewTable 生成合并后的评论表，没有评论时 tbody 为空
func ReviewTable(entities []model.Entity) *html.Node {
	table := element(atom.Table, class("reviews"))

	thead := element(atom.Thead)
	head := element(atom.Tr)
	for _, col := range ReviewColumns {
		head.AppendChild(elementWithText(atom.Th, col))
	}
	thead.AppendChild(head)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range ReviewRows(entities) {
		tr := element(atom.Tr)
		for _, cell := range []string{row.Source, row.Review, row.Entity, row.Sentiment} {
			tr.AppendChild(elementWithText(atom.Td, cell))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	return table
}
