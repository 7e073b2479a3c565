package service

// Paginator 把有序结果集切成固定大小的页。
// 页大小来自配置（POSTS_PER_PAGE），构造时注入，不读全局状态。
type Paginator struct {
	pageSize int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// PageInfo 一页的定位与翻页元数据
type PageInfo struct {
	Number     int   // 解析后的页号，始终在 [1, TotalPages]
	TotalPages int   // 至少为 1，空集也算一页
	Total      int64 // 过滤后的总条数
	HasNext    bool
	HasPrev    bool
	PageSize   int
}

func (p PageInfo) Offset() int { return (p.Number - 1) * p.PageSize }
func (p PageInfo) Limit() int  { return p.PageSize }

// 模板翻页链接用
func (p PageInfo) NextNumber() int { return p.Number + 1 }
func (p PageInfo) PrevNumber() int { return p.Number - 1 }

// Resolve 把请求页号对 total 归一：越界钳到最后一页，小于 1（含解析失败的 0）钳到第一页。
// 深链接落在被删内容之后仍能得到稳定页面。
func (p *Paginator) Resolve(total int64, requested int) PageInfo {
	totalPages := int((total + int64(p.pageSize) - 1) / int64(p.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return PageInfo{
		Number:     number,
		TotalPages: totalPages,
		Total:      total,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
		PageSize:   p.pageSize,
	}
}
