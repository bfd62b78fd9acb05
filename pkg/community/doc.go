// Package community finds community datasets hosted in source-control
// repositories and exports their locations as a flat index.
//
// A dataset is a directory holding a module named after it:
//
//	<path>/
//	    <dataset0>/
//	        <dataset0>.py
//	    <dataset1>/
//	        <dataset1>.py
//
// Anything else found under a namespace location (e.g. __init__.py) is ignored.
//
// The index is a tab-separated file with a namespace, name, path header
// and one row per dataset, grouped by namespace in config order and sorted
// by dataset name.
package community
