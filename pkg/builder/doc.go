// Package builder turns a parsed XML document into the configuration value
// model.
//
// The accepted document shape is:
//
//	<configuration>
//	    <dictionary>
//	        <entry name="timeout">30</entry>
//	        <entry name="settings">
//	            <dictionary>
//	                <entry name="theme">dark</entry>
//	            </dictionary>
//	        </entry>
//	    </dictionary>
//	</configuration>
//
// ParseConfiguration is the entry point. Every rule violation aborts the
// whole build; no partial mapping is ever returned.
package builder
