package hcl

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Devices []*deviceBlock `hcl:"device,block"`
	Catalog *catalogBlock  `hcl:"catalog,block"`
}

// deviceBlock is a `device "<name>" { ... }` block.
type deviceBlock struct {
	Name    string   `hcl:"name,label"`
	Columns []string `hcl:"columns"`
	Rows    int      `hcl:"rows"`

	ColLIO *int `hcl:"col_lio,optional"`
	ColRIO *int `hcl:"col_rio,optional"`
	ColClk int  `hcl:"col_clk"`
	RowClk int  `hcl:"row_clk"`

	ColsRegBuf     []int `hcl:"cols_reg_buf"`
	ColsClkFold    []int `hcl:"cols_clk_fold,optional"`
	RowsPciCeSplit []int `hcl:"rows_pci_ce_split"`
	HasEncrypt     bool  `hcl:"has_encrypt,optional"`

	ColumnIO []*columnIOBlock `hcl:"column_io,block"`
	RowIO    []*rowIOBlock    `hcl:"row_io,block"`
	Gt       *gtBlock         `hcl:"gt,block"`
	Mcbs     []*mcbBlock      `hcl:"mcb,block"`
	Disabled []*disabledBlock `hcl:"disabled,block"`
}

// columnIOBlock sets the top and bottom IO rows of a set of columns.
type columnIOBlock struct {
	Cols   []int  `hcl:"cols"`
	Top    string `hcl:"top,optional"`
	Bottom string `hcl:"bottom,optional"`
}

// rowIOBlock lists the rows of one vertical IO column that carry no IO.
type rowIOBlock struct {
	Side   string `hcl:"side"`
	Absent []int  `hcl:"absent,optional"`
}

type gtBlock struct {
	Kind string `hcl:"kind"`
	Cols []int  `hcl:"cols,optional"`
}

type mcbBlock struct {
	Row     int   `hcl:"row"`
	MuiRows []int `hcl:"mui_rows,optional"`
}

// disabledBlock is one exclusion token. Which attributes are required
// depends on the kind.
type disabledBlock struct {
	Kind   string  `hcl:"kind"`
	Side   *string `hcl:"side,optional"`
	Index  *int    `hcl:"index,optional"`
	Col    *int    `hcl:"col,optional"`
	Region *int    `hcl:"region,optional"`
}

// catalogBlock overrides the builtin catalog.
type catalogBlock struct {
	Nodes   []string `hcl:"nodes"`
	Namings []string `hcl:"namings"`
}
