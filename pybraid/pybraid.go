// Package pybraid registers the "_pybraid" gpython module, exposing the
// braid search engine to embedded Python scripts: enumerate, filter, print,
// and catalog positive braid words from scripted pipelines.
package pybraid

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/braid-systems/gobraid/libbraid"
	"github.com/braid-systems/gobraid/libbraid/catalog"
	"github.com/go-python/gpython/py"
)

var (
	pyBraidType     = py.NewType("Braid", "a positive braid word and the DT code of its closure")
	pyStreamType    = py.NewType("BraidStream", "gobraid.BraidStream")
	pyCatalogType   = py.NewType("Catalog", "gobraid.Catalog")
	pyWorkspaceType = py.NewType("Workspace", "collects active session resources and catalogs")
)

type pyBraid struct {
	*gobraid.Braid
}

func (b pyBraid) Type() *py.Type {
	return pyBraidType
}

func (b pyBraid) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	b.WriteAsString(&writer, gobraid.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (b pyBraid) M__repr__() (py.Object, error) {
	return b.M__str__()
}

type pyStream struct {
	*gobraid.BraidStream
}

func (stream pyStream) Type() *py.Type {
	return pyStreamType
}

func wrapBraidStream(stream *gobraid.BraidStream) py.Object {
	return pyStream{stream}
}

type pyCatalog struct {
	gobraid.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

// Arg 1 (str): braid word expression, e.g. "aab", "1,2,1", "a^3"
func py_NewBraid(module py.Object, args py.Tuple) (py.Object, error) {
	var expr string
	err := py.LoadTuple(args, []interface{}{&expr})
	if err != nil {
		return nil, err
	}
	b, err := libbraid.NewBraidFromExpr(expr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return pyBraid{b}, nil
}

// Arg 1 (int): genus
func py_ListBraids(module py.Object, args py.Tuple) (py.Object, error) {
	var genus py.Object
	err := py.ParseTuple(args, "i", &genus)
	if err != nil {
		return nil, err
	}
	g := int(genus.(py.Int))
	if g < 0 {
		return nil, py.ExceptionNewf(py.ValueError, "genus must be non-negative (got %d)", g)
	}
	stream := libbraid.ListBraids(libbraid.SearchOpts{
		MaxB1: 2 * g,
	})
	return wrapBraidStream(stream), nil
}

func py_Braid_Word(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	return py.String(b.Word.String()), nil
}

func py_Braid_Indices(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	indices := make(py.Tuple, len(b.Word))
	for i, g := range b.Word {
		indices[i] = py.Int(g)
	}
	return indices, nil
}

func py_Braid_DT(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	dt := make(py.Tuple, len(b.DT))
	for i, di := range b.DT {
		dt[i] = py.Int(di)
	}
	return dt, nil
}

func py_Braid_B1(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	return py.Int(b.Word.B1()), nil
}

func py_Braid_Components(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	return py.Int(b.Word.Components()), nil
}

func py_Braid_Stream(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBraid)
	return wrapBraidStream(gobraid.StreamBraid(b.Braid)), nil
}

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

// Workspace collects the catalogs a script session has opened so that the
// module can close them when the interpreter context closes.
type Workspace struct {
	CatalogCtx gobraid.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: gobraid.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags, maxB1 int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags, &maxB1})
	if err != nil {
		return nil, err
	}

	opts := gobraid.CatalogOpts{
		ReadOnly:   (flags & READ_ONLY) != 0,
		DbPathName: pathname,
		MaxB1:      maxB1,
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	return pyCatalog{cat}, nil
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Catalog.Close()
	}
	return py.None, nil
}

func py_Catalog_Select(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	sel := gobraid.DefaultBraidSelector
	if len(args) > 0 {
		minB1, err := py.GetInt(args[0])
		if err != nil {
			return nil, err
		}
		sel.MinB1 = byte(minB1)
	}
	if len(args) > 1 {
		maxB1, err := py.GetInt(args[1])
		if err != nil {
			return nil, err
		}
		sel.MaxB1 = byte(maxB1)
	}
	return wrapBraidStream(gobraid.SelectFromCatalog(cat.Catalog, sel)), nil
}

func py_Catalog_NumBraids(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	forB1, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}
	return py.Int(cat.NumBraids(byte(forB1))), nil
}

func py_Stream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(pyStream)
	return py.Int(stream.PullAll()), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	if echo.to == nil {
		return echo.stdout.Write(buf)
	}
	return echo.to.Write(buf)
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

var gOutCount = int32(0)

func py_Stream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(pyStream)
	var pathname string

	opts := gobraid.DefaultPrintOpts

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}
	atomic.AddInt32(&gOutCount, 1)
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", gOutCount)
	}

	py.LoadAttr(kwargs, "dt", &opts.DT)
	py.LoadAttr(kwargs, "numeric", &opts.Numeric)
	py.LoadAttr(kwargs, "file", &pathname)

	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		os.MkdirAll(filepath.Dir(pathname), 0700)

		file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.Print(writer, opts)
	return wrapBraidStream(next), nil
}

func py_Stream_AddTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(pyStream)
	cat, isCat := args[0].(pyCatalog)
	if !isCat {
		return nil, py.ExceptionNewf(py.TypeError, "expected Catalog object (got %v)", args[0].Type().Name)
	}
	if cat.IsReadOnly() {
		return nil, py.ExceptionNewf(py.PermissionError, "%v", gobraid.ErrReadOnlyCatalog)
	}
	next := stream.AddTo(cat.Catalog, gobraid.AddBraidOpts{})
	return wrapBraidStream(next), nil
}

func py_Stream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(pyStream)
	return wrapBraidStream(libbraid.DropDupes(stream.BraidStream)), nil
}

func init() {

	/////////////////////////////////
	// Braid
	{
		pyBraidType.Dict["Word"] = py.MustNewMethod("Word", py_Braid_Word, 0, "returns the word as a string of letters")
		pyBraidType.Dict["Indices"] = py.MustNewMethod("Indices", py_Braid_Indices, 0, "returns the word as a tuple of generator indices")
		pyBraidType.Dict["DT"] = py.MustNewMethod("DT", py_Braid_DT, 0, "returns the DT code of the closure as a tuple")
		pyBraidType.Dict["B1"] = py.MustNewMethod("B1", py_Braid_B1, 0, "")
		pyBraidType.Dict["Components"] = py.MustNewMethod("Components", py_Braid_Components, 0, "")
		pyBraidType.Dict["Stream"] = py.MustNewMethod("Stream", py_Braid_Stream, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Select"] = py.MustNewMethod("Select", py_Catalog_Select, 0, "")
		pyCatalogType.Dict["NumBraids"] = py.MustNewMethod("NumBraids", py_Catalog_NumBraids, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// BraidStream
	{
		pyStreamType.Dict["Go"] = py.MustNewMethod("Go", py_Stream_Go, 0, "counts the braids output from the BraidStream")
		pyStreamType.Dict["Print"] = py.MustNewMethod("Print", py_Stream_Print, 0, "prints each braid record from the BraidStream")
		pyStreamType.Dict["AddTo"] = py.MustNewMethod("AddTo", py_Stream_AddTo, 0, "")
		pyStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", py_Stream_DropDupes, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewBraid", py_NewBraid, 0, ""),
			py.MustNewMethod("ListBraids", py_ListBraids, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(libbraid.LIB_VERSION),
			"MAX_GEN":     py.Int(gobraid.MaxGenerator),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pybraid",
				Doc:  "positive braid knot enumeration gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})
	}
}
